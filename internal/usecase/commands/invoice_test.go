//go:build unit

package commands_test

import (
	"context"
	"testing"

	"pawbook/internal/infra"
	"pawbook/internal/usecase/commands"
	queriesmock "pawbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// The nil pool makes any transaction attempt panic, so these tests also
// verify that a missing invoice is rejected before one is opened.
func TestDeleteInvoice_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockInvoiceReadStore(ctrl)
	svc := commands.NewInvoiceCommands(nil, nil, readStore, nil, nil, nil)

	id := uuid.New()
	readStore.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound))

	err := svc.DeleteInvoice(context.Background(), id)
	assert.ErrorIs(t, err, commands.ErrInvoiceNotFound)
}
