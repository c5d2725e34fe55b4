//go:build unit

package commands_test

import (
	"context"
	"testing"

	"pawbook/internal/domain/user"
	"pawbook/internal/infra"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"
	queriesmock "pawbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func adminView(id uuid.UUID, active bool) *queries.UserView {
	return &queries.UserView{
		ID:       id,
		Email:    "admin@example.com",
		Name:     "Admin",
		Role:     string(user.RoleAdmin),
		IsActive: active,
	}
}

func TestDeleteUser_LastAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	svc := commands.NewUserCommands(nil, readStore, nil)

	id := uuid.New()
	readStore.EXPECT().FindByID(gomock.Any(), id).Return(adminView(id, true), nil)
	readStore.EXPECT().List(gomock.Any(), queries.UserFilters{}).
		Return([]*queries.UserView{adminView(id, true)}, nil)

	err := svc.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, commands.ErrLastAdmin)
}

func TestDeleteUser_CountsOnlyActiveAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	svc := commands.NewUserCommands(nil, readStore, nil)

	id := uuid.New()
	inactive := adminView(uuid.New(), false)
	readStore.EXPECT().FindByID(gomock.Any(), id).Return(adminView(id, true), nil)
	readStore.EXPECT().List(gomock.Any(), queries.UserFilters{}).
		Return([]*queries.UserView{adminView(id, true), inactive}, nil)

	err := svc.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, commands.ErrLastAdmin)
}

func TestDeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	svc := commands.NewUserCommands(nil, readStore, nil)

	id := uuid.New()
	readStore.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	err := svc.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, commands.ErrUserNotFound)
}
