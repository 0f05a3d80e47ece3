package chain

import (
	"context"
	"crypto/ecdsa"
	stderrors "errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Backend is what the client needs from an Ethereum node.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// RetryConfig controls retries of read-only RPC calls. Transactions are
// never retried: a stake that reached the chain may have spent the nonce.
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxElapsedTime  time.Duration
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  20 * time.Second,
	}
}

// RouterClient drives a deployed AmpedStakingRouter. It exposes the same
// operations as stakingrouter.Router; delegated stakes are submitted by the
// relayer key.
type RouterClient struct {
	domain         stakingrouter.Domain
	separator      common.Hash
	backend        Backend
	contract       *bind.BoundContract
	relayer        *ecdsa.PrivateKey
	retry          *RetryConfig
	receiptTimeout time.Duration
	logger         *zap.Logger
}

type Option func(*RouterClient)

func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *RouterClient) {
		c.retry = cfg
	}
}

func WithReceiptTimeout(d time.Duration) Option {
	return func(c *RouterClient) {
		c.receiptTimeout = d
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *RouterClient) {
		c.logger = l
	}
}

// Dial connects to rpcURL and binds the router at routerAddress. The chain
// ID is read from the node. relayer may be nil for a read-only client.
func Dial(ctx context.Context, rpcURL string, routerAddress common.Address, relayer *ecdsa.PrivateKey, opts ...Option) (*RouterClient, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", rpcURL)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to read chain id")
	}
	return NewRouterClient(client, chainID, routerAddress, relayer, opts...)
}

func NewRouterClient(backend Backend, chainID *big.Int, routerAddress common.Address, relayer *ecdsa.PrivateKey, opts ...Option) (*RouterClient, error) {
	parsed, err := abi.JSON(strings.NewReader(RouterABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse router ABI: %w", err)
	}

	domain := stakingrouter.NewDomain(chainID, routerAddress)
	c := &RouterClient{
		domain:         domain,
		separator:      domain.Separator(),
		backend:        backend,
		contract:       bind.NewBoundContract(routerAddress, parsed, backend, backend, backend),
		relayer:        relayer,
		retry:          DefaultRetryConfig(),
		receiptTimeout: 2 * time.Minute,
		logger:         logger.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

func (c *RouterClient) Domain() stakingrouter.Domain {
	return c.domain
}

func (c *RouterClient) DomainSeparator() common.Hash {
	return c.separator
}

// RelayerAddress returns the address transactions are sent from, or the
// zero address for a read-only client.
func (c *RouterClient) RelayerAddress() common.Address {
	if c.relayer == nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(c.relayer.PublicKey)
}

func (c *RouterClient) Nonce(ctx context.Context, account common.Address) (uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "nonces", account); err != nil {
		return 0, err
	}
	nonce := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	if !nonce.IsUint64() {
		return 0, fmt.Errorf("nonce %s out of range", nonce)
	}
	return nonce.Uint64(), nil
}

func (c *RouterClient) GetStakeDigest(ctx context.Context, account common.Address, amount *big.Int, deadline uint64) (common.Hash, error) {
	if !stakingrouter.ValidAmount(amount) {
		return common.Hash{}, stakingrouter.ErrInvalidAmount
	}
	var out []interface{}
	if err := c.call(ctx, &out, "getStakeDigest", account, amount, new(big.Int).SetUint64(deadline)); err != nil {
		return common.Hash{}, err
	}
	return common.Hash(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

// StakeAmpedForAccount submits the delegated stake and waits for it to be
// mined. Reverts are reported with the local router's errors; whether the
// nonce was spent is decided by the contract.
func (c *RouterClient) StakeAmpedForAccount(ctx context.Context, account common.Address, amount *big.Int, deadline uint64, sig stakingrouter.Signature) (*stakingrouter.StakeReceipt, error) {
	if !stakingrouter.ValidAmount(amount) {
		return nil, stakingrouter.ErrInvalidAmount
	}
	nonce, err := c.Nonce(ctx, account)
	if err != nil {
		return nil, err
	}

	v, r, s := sig.VRS()
	receipt, err := c.transact(ctx, "stakeAmpedForAccount", account, amount, new(big.Int).SetUint64(deadline), v, r, s)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Delegated stake mined",
		logger.Account(account),
		logger.Nonce(nonce),
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)
	txHash := receipt.TxHash
	return &stakingrouter.StakeReceipt{
		Account:  account,
		AmountIn: new(big.Int).Set(amount),
		Nonce:    &nonce,
		TxHash:   &txHash,
	}, nil
}

// StakeAmped stakes from the relayer's own account. The contract takes the
// caller from msg.sender, so caller must be the relayer.
func (c *RouterClient) StakeAmped(ctx context.Context, caller common.Address, amount *big.Int) (*stakingrouter.StakeReceipt, error) {
	if !stakingrouter.ValidAmount(amount) {
		return nil, stakingrouter.ErrInvalidAmount
	}
	if c.relayer == nil {
		return nil, ErrNoRelayer
	}
	if caller != c.RelayerAddress() {
		return nil, ErrCallerNotRelayer
	}

	receipt, err := c.transact(ctx, "stakeAmped", amount)
	if err != nil {
		return nil, err
	}
	txHash := receipt.TxHash
	return &stakingrouter.StakeReceipt{
		Account:  caller,
		AmountIn: new(big.Int).Set(amount),
		TxHash:   &txHash,
	}, nil
}

func (c *RouterClient) call(ctx context.Context, out *[]interface{}, method string, params ...interface{}) error {
	operation := func() error {
		err := c.contract.Call(&bind.CallOpts{Context: ctx}, out, method, params...)
		if err == nil {
			return nil
		}
		if mapped := routerError(err); mapped != nil {
			return backoff.Permanent(mapped)
		}
		c.logger.Debug("Router call failed, retrying", zap.String("method", method), zap.Error(err))
		return err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retry.InitialInterval
	expBackoff.MaxInterval = c.retry.MaxInterval
	expBackoff.Multiplier = c.retry.Multiplier
	expBackoff.MaxElapsedTime = c.retry.MaxElapsedTime

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retry.MaxRetries)), ctx))
	if err != nil {
		if isRouterError(err) {
			return err
		}
		return errors.Wrapf(err, "router %s call failed", method)
	}
	return nil
}

func (c *RouterClient) transact(ctx context.Context, method string, params ...interface{}) (*types.Receipt, error) {
	if c.relayer == nil {
		return nil, ErrNoRelayer
	}

	chainID := c.domain.ChainID
	opts, err := bind.NewKeyedTransactorWithChainID(c.relayer, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transactor")
	}
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, method, params...)
	if err != nil {
		if mapped := routerError(err); mapped != nil {
			return nil, mapped
		}
		if strings.Contains(err.Error(), "execution reverted") {
			return nil, &stakingrouter.CollaboratorError{Op: method, Err: stderrors.New(RevertReason(err))}
		}
		return nil, errors.Wrapf(err, "failed to send %s", method)
	}

	c.logger.Info("Router transaction sent",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("from", opts.From.Hex()),
	)

	waitCtx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed waiting for %s receipt %s", method, tx.Hash().Hex())
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &stakingrouter.CollaboratorError{
			Op:  method,
			Err: fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash().Hex()),
		}
	}
	return receipt, nil
}

func isRouterError(err error) bool {
	return stderrors.Is(err, stakingrouter.ErrExpiredAuthorization) ||
		stderrors.Is(err, stakingrouter.ErrInvalidAuthorization) ||
		stakingrouter.IsCollaboratorFailure(err)
}
