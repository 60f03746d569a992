package dynamic_bonding_curve

import (
	"context"
	"errors"
	"testing"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec/codectest"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) GetAccountInfoWithOpts(ctx context.Context, account solanago.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	args := m.Called(ctx, account, opts)
	res, _ := args.Get(0).(*rpc.GetAccountInfoResult)
	return res, args.Error(1)
}

func (m *mockReader) GetMultipleAccountsWithOpts(ctx context.Context, accounts []solanago.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error) {
	args := m.Called(ctx, accounts, opts)
	res, _ := args.Get(0).(*rpc.GetMultipleAccountsResult)
	return res, args.Error(1)
}

func (m *mockReader) GetProgramAccountsWithOpts(ctx context.Context, publicKey solanago.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	args := m.Called(ctx, publicKey, opts)
	res, _ := args.Get(0).(rpc.GetProgramAccountsResult)
	return res, args.Error(1)
}

var errTransient = errors.New("429 too many requests")

func newTestService(t *testing.T, reader *mockReader, opts ...Option) *StateService {
	t.Helper()
	opts = append([]Option{
		WithLogger(zaptest.NewLogger(t)),
		WithRegisterer(prometheus.NewRegistry()),
		WithRetry(2, time.Millisecond, time.Millisecond),
	}, opts...)
	return NewStateService(reader, rpc.CommitmentConfirmed, opts...)
}

func poolConfigAccount(t *testing.T, swapBaseAmount uint64) *rpc.Account {
	t.Helper()
	cfg := codectest.SamplePoolConfig()
	cfg.SwapBaseAmount = swapBaseAmount
	data, err := codectest.EncodePoolConfig(cfg)
	require.NoError(t, err)
	return &rpc.Account{
		Lamports: 8_185_920,
		Owner:    DynamicBondingCurveProgramID,
		Data:     rpc.DataBytesOrJSONFromBytes(data),
	}
}

func newKey() solanago.PublicKey {
	return solanago.NewWallet().PublicKey()
}

func TestGetPoolConfig(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)
	address := newKey()

	reader.On("GetAccountInfoWithOpts", mock.Anything, address, mock.MatchedBy(func(o *rpc.GetAccountInfoOpts) bool {
		return o.Commitment == rpc.CommitmentConfirmed && o.Encoding == solanago.EncodingBase64
	})).Return(&rpc.GetAccountInfoResult{Value: poolConfigAccount(t, 42)}, nil).Once()

	cfg, err := s.GetPoolConfig(context.Background(), address)
	require.NoError(t, err)

	want := codectest.SamplePoolConfig()
	want.SwapBaseAmount = 42
	assert.Equal(t, *want, *cfg)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.fetches.WithLabelValues(resultOK)))
	reader.AssertExpectations(t)
}

func TestGetPoolConfigNotFound(t *testing.T) {
	tests := map[string][]any{
		"rpc not found": {nil, rpc.ErrNotFound},
		"nil value":     {&rpc.GetAccountInfoResult{}, nil},
	}
	for name, ret := range tests {
		t.Run(name, func(t *testing.T) {
			reader := new(mockReader)
			s := newTestService(t, reader)

			reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).Return(ret...)

			cfg, err := s.GetPoolConfig(context.Background(), newKey())
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrAccountNotFound)
			reader.AssertNumberOfCalls(t, "GetAccountInfoWithOpts", 1)
			assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.fetches.WithLabelValues(resultNotFound)))
		})
	}
}

func TestGetPoolConfigInvalidOwner(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	acc := poolConfigAccount(t, 1)
	acc.Owner = solanago.TokenProgramID
	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(&rpc.GetAccountInfoResult{Value: acc}, nil)

	_, err := s.GetPoolConfig(context.Background(), newKey())
	assert.ErrorIs(t, err, ErrInvalidOwner)
	reader.AssertNumberOfCalls(t, "GetAccountInfoWithOpts", 1)
}

func TestGetPoolConfigDecodeErrorIsNotRetried(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	acc := poolConfigAccount(t, 1)
	acc.Data = rpc.DataBytesOrJSONFromBytes(acc.Data.GetBinary()[:500])
	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(&rpc.GetAccountInfoResult{Value: acc}, nil)

	_, err := s.GetPoolConfig(context.Background(), newKey())
	assert.ErrorIs(t, err, codec.ErrTruncated)

	var tErr *codec.TruncatedBufferError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, 500, tErr.Offset+tErr.Remaining)

	reader.AssertNumberOfCalls(t, "GetAccountInfoWithOpts", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.decodeErrors.WithLabelValues("truncated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.fetches.WithLabelValues(resultDecodeError)))
}

func TestGetPoolConfigEnumValidation(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader, WithDecodeOptions(codec.WithEnumValidation()))

	cfg := codectest.SamplePoolConfig()
	cfg.MigrationOption = 9
	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(&rpc.GetAccountInfoResult{Value: &rpc.Account{
			Owner: DynamicBondingCurveProgramID,
			Data:  rpc.DataBytesOrJSONFromBytes(codectest.MustEncodePoolConfig(cfg)),
		}}, nil)

	_, err := s.GetPoolConfig(context.Background(), newKey())
	assert.ErrorIs(t, err, codec.ErrUnknownEnumValue)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.decodeErrors.WithLabelValues("domain")))
}

func TestGetPoolConfigRetriesTransientErrors(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errTransient).Twice()
	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(&rpc.GetAccountInfoResult{Value: poolConfigAccount(t, 7)}, nil).Once()

	cfg, err := s.GetPoolConfig(context.Background(), newKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.SwapBaseAmount)
	reader.AssertNumberOfCalls(t, "GetAccountInfoWithOpts", 3)
}

func TestGetPoolConfigGivesUpAfterMaxRetries(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errTransient)

	_, err := s.GetPoolConfig(context.Background(), newKey())
	assert.ErrorIs(t, err, errTransient)
	reader.AssertNumberOfCalls(t, "GetAccountInfoWithOpts", 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.fetches.WithLabelValues(resultRPCError)))
}

func TestGetPoolConfigCancelled(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader, WithRetry(5, time.Hour, time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader.On("GetAccountInfoWithOpts", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errTransient)

	_, err := s.GetPoolConfig(ctx, newKey())
	assert.ErrorIs(t, err, context.Canceled)
	reader.AssertNumberOfCalls(t, "GetAccountInfoWithOpts", 1)
}

func TestGetPoolConfigsKeepsInputOrder(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader, WithConcurrency(2))

	addresses := make([]solanago.PublicKey, 150)
	accounts := make([]*rpc.Account, len(addresses))
	for i := range addresses {
		addresses[i] = newKey()
		accounts[i] = poolConfigAccount(t, uint64(i))
	}

	for _, r := range [][2]int{{0, 100}, {100, 150}} {
		first := addresses[r[0]]
		n := r[1] - r[0]
		reader.On("GetMultipleAccountsWithOpts", mock.Anything, mock.MatchedBy(func(keys []solanago.PublicKey) bool {
			return len(keys) == n && keys[0].Equals(first)
		}), mock.Anything).Return(&rpc.GetMultipleAccountsResult{Value: accounts[r[0]:r[1]]}, nil).Once()
	}

	out, err := s.GetPoolConfigs(context.Background(), addresses)
	require.NoError(t, err)
	require.Len(t, out, len(addresses))
	for i, cfg := range out {
		require.NotNil(t, cfg, "index %d", i)
		assert.Equal(t, uint64(i), cfg.SwapBaseAmount, "index %d", i)
	}
	reader.AssertExpectations(t)
}

func TestGetPoolConfigsMissingAccount(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	addresses := []solanago.PublicKey{newKey(), newKey()}
	reader.On("GetMultipleAccountsWithOpts", mock.Anything, addresses, mock.Anything).
		Return(&rpc.GetMultipleAccountsResult{Value: []*rpc.Account{poolConfigAccount(t, 1), nil}}, nil)

	out, err := s.GetPoolConfigs(context.Background(), addresses)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), addresses[1].String())
}

func TestGetPoolConfigsEmpty(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	out, err := s.GetPoolConfigs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	reader.AssertNotCalled(t, "GetMultipleAccountsWithOpts", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProgramPoolConfigsSkipsUndecodable(t *testing.T) {
	reader := new(mockReader)
	s := newTestService(t, reader)

	good1, bad, good2 := newKey(), newKey(), newKey()
	garbage := &rpc.Account{
		Owner: DynamicBondingCurveProgramID,
		Data:  rpc.DataBytesOrJSONFromBytes(codec.PoolConfigDiscriminator[:]),
	}

	reader.On("GetProgramAccountsWithOpts", mock.Anything, DynamicBondingCurveProgramID, mock.MatchedBy(func(o *rpc.GetProgramAccountsOpts) bool {
		return len(o.Filters) == 1 &&
			o.Filters[0].Memcmp.Offset == 0 &&
			string(o.Filters[0].Memcmp.Bytes) == string(codec.PoolConfigDiscriminator[:])
	})).Return(rpc.GetProgramAccountsResult{
		{Pubkey: good1, Account: poolConfigAccount(t, 1)},
		{Pubkey: bad, Account: garbage},
		{Pubkey: good2, Account: poolConfigAccount(t, 2)},
	}, nil)

	out, err := s.GetProgramPoolConfigs(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, good1, out[0].Pubkey)
	assert.Equal(t, uint64(1), out[0].Account.SwapBaseAmount)
	assert.Equal(t, good2, out[1].Pubkey)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.decodeErrors.WithLabelValues("truncated")))
}

func TestGetPoolConfigsByKey(t *testing.T) {
	key := newKey()
	tests := []struct {
		name   string
		offset uint64
		call   func(s *StateService) ([]ProgramAccount[PoolConfig], error)
	}{
		{"fee claimer", 40, func(s *StateService) ([]ProgramAccount[PoolConfig], error) {
			return s.GetPoolConfigsByFeeClaimer(context.Background(), key)
		}},
		{"quote mint", 8, func(s *StateService) ([]ProgramAccount[PoolConfig], error) {
			return s.GetPoolConfigsByQuoteMint(context.Background(), key)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := new(mockReader)
			s := newTestService(t, reader)

			address := newKey()
			reader.On("GetProgramAccountsWithOpts", mock.Anything, DynamicBondingCurveProgramID, mock.MatchedBy(func(o *rpc.GetProgramAccountsOpts) bool {
				return len(o.Filters) == 2 &&
					o.Filters[1].Memcmp.Offset == tt.offset &&
					string(o.Filters[1].Memcmp.Bytes) == string(key[:])
			})).Return(rpc.GetProgramAccountsResult{
				{Pubkey: address, Account: poolConfigAccount(t, 3)},
			}, nil).Once()

			out, err := tt.call(s)
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Equal(t, address, out[0].Pubkey)
			reader.AssertExpectations(t)
		})
	}
}

func TestCreateDefaultsCommitment(t *testing.T) {
	client := Create(new(mockReader), "")
	assert.Equal(t, rpc.CommitmentConfirmed, client.Commitment)
	assert.Equal(t, rpc.CommitmentConfirmed, client.State.Commitment)
	assert.Equal(t, DynamicBondingCurveProgramID, client.State.ProgramID)
}
