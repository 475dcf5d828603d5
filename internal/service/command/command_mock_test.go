package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockgateway "github.com/gabrielBlankenburg/exbanking-go/internal/gen/mock/gateway"
	mockuserstore "github.com/gabrielBlankenburg/exbanking-go/internal/gen/mock/userstore"
	"github.com/gabrielBlankenburg/exbanking-go/internal/gateway"
	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/internal/service/command"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

func TestCreateUserWithMockStoreReportsAlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	users := mockuserstore.NewMockUserStore(ctrl)
	users.EXPECT().Create("alice").Return(false)

	uc := &command.UseCase{Users: users, Logger: mlog.NoneLogger{}}

	err := uc.CreateUser("alice")
	require.Error(t, err)
	assert.Equal(t, mmodel.ErrUserAlreadyExists, errKind(t, err))
}

func TestWithdrawWithMockGatewayPropagatesNotEnoughFunds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mockgateway.NewMockTransactionGateway(ctrl)
	gw.EXPECT().
		Withdraw(gomock.Any(), "alice", "usd", int64(1100)).
		Return(gateway.Result{Err: mmodel.NewError(mmodel.ErrNotEnoughFunds, "not enough funds")})

	uc := &command.UseCase{Gateway: gw, Logger: mlog.NoneLogger{}}

	_, err := uc.Withdraw(context.Background(), "alice", 11.0, "usd")
	require.Error(t, err)
	assert.Equal(t, mmodel.ErrNotEnoughFunds, errKind(t, err))
}

func TestDepositWithMockGatewayFormatsBalance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mockgateway.NewMockTransactionGateway(ctrl)
	gw.EXPECT().
		Deposit(gomock.Any(), "alice", "usd", int64(3298)).
		Return(gateway.Result{Balances: []int64{3298}})

	uc := &command.UseCase{Gateway: gw, Logger: mlog.NoneLogger{}}

	balance, err := uc.Deposit(context.Background(), "alice", 32.98, "usd")
	require.NoError(t, err)
	assert.InDelta(t, 32.98, balance, 1e-9)
}
