package dynamic_bonding_curve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/helpers"
	"github.com/krazyTry/meteora-dbc-config/solana"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidOwner    = errors.New("account not owned by the dynamic bonding curve program")
)

type stateOptions struct {
	logger          *zap.Logger
	registerer      prometheus.Registerer
	maxRetries      uint
	retryBackoff    time.Duration
	maxRetryBackoff time.Duration
	concurrency     int
	decodeOpts      []codec.DecodeOption
}

type Option func(*stateOptions)

func WithLogger(logger *zap.Logger) Option {
	return func(o *stateOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegisterer registers the service metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *stateOptions) {
		o.registerer = reg
	}
}

// WithRetry sets how many times a failed RPC call is retried and the
// exponential backoff bounds between attempts.
func WithRetry(maxRetries uint, initial, maxInterval time.Duration) Option {
	return func(o *stateOptions) {
		o.maxRetries = maxRetries
		if initial > 0 {
			o.retryBackoff = initial
		}
		if maxInterval > 0 {
			o.maxRetryBackoff = maxInterval
		}
	}
}

func WithConcurrency(n int) Option {
	return func(o *stateOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func WithDecodeOptions(opts ...codec.DecodeOption) Option {
	return func(o *stateOptions) {
		o.decodeOpts = append(o.decodeOpts, opts...)
	}
}

// StateService loads and decodes PoolConfig accounts.
type StateService struct {
	*DynamicBondingCurveProgram

	decoder *codec.Decoder
	logger  *zap.Logger
	metrics *stateMetrics
	opts    stateOptions
}

func NewStateService(reader solana.AccountReader, commitment rpc.CommitmentType, opts ...Option) *StateService {
	o := stateOptions{
		logger:          zap.NewNop(),
		maxRetries:      DefaultMaxRetries,
		retryBackoff:    DefaultRetryBackoff,
		maxRetryBackoff: DefaultMaxRetryBackoff,
		concurrency:     DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &StateService{
		DynamicBondingCurveProgram: NewDynamicBondingCurveProgram(reader, commitment),
		decoder:                    codec.NewDecoder(o.decodeOpts...),
		logger:                     o.logger.Named("dbc-state"),
		metrics:                    newStateMetrics(o.registerer),
		opts:                       o,
	}
}

func retry[T any](ctx context.Context, s *StateService, method string, op backoff.Operation[T]) (T, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.opts.retryBackoff
	policy.MaxInterval = s.opts.maxRetryBackoff

	out, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(s.opts.maxRetries+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			s.logger.Warn("rpc call failed, retrying",
				zap.String("method", method),
				zap.Duration("backoff", next),
				zap.Error(err))
		}),
	)
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	return out, err
}

// GetPoolConfig fetches and decodes the PoolConfig account at configAddress.
// Missing accounts and accounts owned by another program are not retried.
func (s *StateService) GetPoolConfig(ctx context.Context, configAddress solanago.PublicKey) (*PoolConfig, error) {
	cfg, err := retry(ctx, s, "getAccountInfo", func() (*PoolConfig, error) {
		acc, err := solana.GetAccountInfo(ctx, s.RPC, configAddress, s.Commitment)
		if errors.Is(err, rpc.ErrNotFound) || (err == nil && (acc == nil || acc.Value == nil)) {
			return nil, backoff.Permanent(fmt.Errorf("%w: %s", ErrAccountNotFound, configAddress))
		}
		if err != nil {
			return nil, err
		}
		cfg, err := s.decodeAccount(configAddress, acc.Value)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return cfg, nil
	})
	s.metrics.observeFetch(err)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched pool config", zap.Stringer("address", configAddress))
	return cfg, nil
}

// GetPoolConfigs fetches many PoolConfig accounts in getMultipleAccounts
// batches. Results follow the order of configAddresses; the first missing or
// undecodable account fails the whole call.
func (s *StateService) GetPoolConfigs(ctx context.Context, configAddresses []solanago.PublicKey) ([]*PoolConfig, error) {
	out := make([]*PoolConfig, len(configAddresses))
	if len(configAddresses) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)

	start := 0
	for _, chunk := range solana.ChunkKeys(configAddresses, solana.MaxMultipleAccounts) {
		base := start
		start += len(chunk)
		g.Go(func() error {
			res, err := retry(gctx, s, "getMultipleAccounts", func() (*rpc.GetMultipleAccountsResult, error) {
				return solana.GetMultipleAccountInfo(gctx, s.RPC, chunk, s.Commitment)
			})
			if err != nil {
				s.metrics.observeFetch(err)
				return err
			}
			if len(res.Value) != len(chunk) {
				err := fmt.Errorf("getMultipleAccounts returned %d accounts for %d keys", len(res.Value), len(chunk))
				s.metrics.observeFetch(err)
				return err
			}
			for i, acc := range res.Value {
				address := chunk[i]
				if acc == nil {
					err := fmt.Errorf("%w: %s", ErrAccountNotFound, address)
					s.metrics.observeFetch(err)
					return err
				}
				cfg, err := s.decodeAccount(address, acc)
				s.metrics.observeFetch(err)
				if err != nil {
					return err
				}
				out[base+i] = cfg
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.logger.Debug("fetched pool configs", zap.Int("count", len(out)))
	return out, nil
}

// GetProgramPoolConfigs returns every PoolConfig account of the program.
// Accounts that fail to decode are logged and skipped.
func (s *StateService) GetProgramPoolConfigs(ctx context.Context) ([]ProgramAccount[PoolConfig], error) {
	return s.getProgramPoolConfigs(ctx, nil)
}

// GetPoolConfigsByFeeClaimer returns the PoolConfig accounts whose fee
// claimer is feeClaimer.
func (s *StateService) GetPoolConfigsByFeeClaimer(ctx context.Context, feeClaimer solanago.PublicKey) ([]ProgramAccount[PoolConfig], error) {
	return s.getProgramPoolConfigs(ctx, &helpers.Filter{Owner: feeClaimer, Offset: codec.FeeClaimerOffset})
}

// GetPoolConfigsByQuoteMint returns the PoolConfig accounts quoted in quoteMint.
func (s *StateService) GetPoolConfigsByQuoteMint(ctx context.Context, quoteMint solanago.PublicKey) ([]ProgramAccount[PoolConfig], error) {
	return s.getProgramPoolConfigs(ctx, &helpers.Filter{Owner: quoteMint, Offset: codec.QuoteMintOffset})
}

func (s *StateService) getProgramPoolConfigs(ctx context.Context, filter *helpers.Filter) ([]ProgramAccount[PoolConfig], error) {
	opts := &rpc.GetProgramAccountsOpts{
		Commitment: s.Commitment,
		Encoding:   solanago.EncodingBase64,
		Filters:    helpers.CreateProgramAccountFilter(helpers.AccountKeyPoolConfig, filter),
	}
	accounts, err := retry(ctx, s, "getProgramAccounts", func() (rpc.GetProgramAccountsResult, error) {
		return s.RPC.GetProgramAccountsWithOpts(ctx, s.ProgramID, opts)
	})
	if err != nil {
		s.metrics.observeFetch(err)
		return nil, err
	}

	out := make([]ProgramAccount[PoolConfig], 0, len(accounts))
	skipped := 0
	for _, acc := range accounts {
		if acc == nil || acc.Account == nil {
			continue
		}
		cfg, err := s.decodeAccount(acc.Pubkey, acc.Account)
		s.metrics.observeFetch(err)
		if err != nil {
			skipped++
			s.logger.Warn("skipping undecodable pool config",
				zap.Stringer("address", acc.Pubkey),
				zap.Error(err))
			continue
		}
		out = append(out, ProgramAccount[PoolConfig]{Pubkey: acc.Pubkey, Account: cfg})
	}
	s.logger.Debug("scanned pool configs",
		zap.Int("decoded", len(out)),
		zap.Int("skipped", skipped))
	return out, nil
}

func (s *StateService) decodeAccount(address solanago.PublicKey, acc *rpc.Account) (*PoolConfig, error) {
	if !acc.Owner.Equals(s.ProgramID) {
		return nil, fmt.Errorf("%w: %s is owned by %s", ErrInvalidOwner, address, acc.Owner)
	}
	cfg, err := s.decoder.Decode(acc.Data.GetBinary())
	if err != nil {
		s.metrics.observeDecodeError(err)
		return nil, fmt.Errorf("decode pool config %s: %w", address, err)
	}
	return cfg, nil
}
