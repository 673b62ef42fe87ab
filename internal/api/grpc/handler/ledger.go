package handler

import (
	"context"
	"time"

	"github.com/holiman/uint256"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

const (
	// eventPageSize is the page size used to replay stored events to subscribers.
	eventPageSize = 500
	// eventCatchUpInterval bounds how long an event dropped by the live feed
	// stays undelivered on a quiet ledger.
	eventCatchUpInterval = 5 * time.Second
)

// LedgerService defines the ledger operations exposed over gRPC.
type LedgerService interface {
	Initialize(ctx context.Context, params model.InitializeParams) error
	AuthenticateUser(ctx context.Context, user model.Address, index []byte) error
	RequestDeposit(ctx context.Context, user model.Address, amount int64, index []byte) (model.Hash, error)
	StoreDeposit(ctx context.Context, params model.StoreDepositParams) error
	RequestTransfer(ctx context.Context, sender model.Address, encryptedReceiverIndex, encryptedAmount []byte) (model.Hash, error)
	ProcessTransfer(ctx context.Context, params model.ProcessTransferParams) error

	UserIndex(ctx context.Context, user model.Address) ([]byte, error)
	EncryptedBalance(ctx context.Context, index model.AccountIndex) (model.EncryptedBalance, error)
	DepositRequest(ctx context.Context, requestID model.Hash) (model.DepositRequest, error)
	DepositCompleted(ctx context.Context, requestID model.Hash) (bool, error)
	TransferRequest(ctx context.Context, transferID model.Hash) (model.TransferRequest, error)
	TransferCompleted(ctx context.Context, transferID model.Hash) (bool, error)
	EncryptedSupply(ctx context.Context) (*uint256.Int, error)
	ServerManager(ctx context.Context) (model.Address, error)
	TokenContract(ctx context.Context) (string, error)
	ListEvents(ctx context.Context, afterID uint64, limit int) ([]model.Event, error)
}

// EventSubscriber delivers events as they are committed.
type EventSubscriber interface {
	Subscribe() (<-chan model.Event, func())
}

// Ledger handles gRPC endpoints of the ledger.
type Ledger struct {
	ledgerapi.UnimplementedLedgerServer
	ledgerService LedgerService
	subscriber    EventSubscriber
	catchUpEvery  time.Duration
	logger        *logger.Logger
}

// NewLedger creates a new Ledger handler.
func NewLedger(ledgerService LedgerService, subscriber EventSubscriber, logger *logger.Logger) *Ledger {
	return &Ledger{
		ledgerService: ledgerService,
		subscriber:    subscriber,
		catchUpEvery:  eventCatchUpInterval,
		logger:        logger,
	}
}

// Initialize writes the one-time ledger configuration.
func (h *Ledger) Initialize(ctx context.Context, req *ledgerapi.InitializeRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Ledger handler: processing initialize request",
		"authority", req.Authority,
		"custody_asset", req.CustodyAsset)

	err := h.ledgerService.Initialize(ctx, model.InitializeParams{
		Authority:      model.Address(req.Authority),
		CustodyAsset:   req.CustodyAsset,
		CustodyAccount: req.CustodyAccount,
	})
	if err != nil {
		h.logger.Error("Ledger handler: initialize failed",
			"authority", req.Authority,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Ledger handler: initialize completed",
		"authority", req.Authority)

	return &emptypb.Empty{}, nil
}

// AuthenticateUser registers the caller's encrypted account index.
func (h *Ledger) AuthenticateUser(ctx context.Context, req *ledgerapi.AuthenticateUserRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Ledger handler: processing authenticate user request",
		"user", req.User)

	if err := h.ledgerService.AuthenticateUser(ctx, model.Address(req.User), req.EncryptedIndex); err != nil {
		h.logger.Error("Ledger handler: authenticate user failed",
			"user", req.User,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Ledger handler: authenticate user completed",
		"user", req.User)

	return &emptypb.Empty{}, nil
}

// RequestDeposit records a deposit request and returns its identifier.
func (h *Ledger) RequestDeposit(ctx context.Context, req *ledgerapi.RequestDepositRequest) (*ledgerapi.RequestDepositResponse, error) {
	h.logger.Debug("Ledger handler: processing request deposit request",
		"user", req.User,
		"amount", req.Amount)

	requestID, err := h.ledgerService.RequestDeposit(ctx, model.Address(req.User), req.Amount, req.EncryptedIndex)
	if err != nil {
		h.logger.Error("Ledger handler: request deposit failed",
			"user", req.User,
			"amount", req.Amount,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Ledger handler: request deposit completed",
		"user", req.User,
		"request_id", requestID)

	return &ledgerapi.RequestDepositResponse{RequestId: requestID.Hex()}, nil
}

// StoreDeposit fulfills a deposit request with a new encrypted balance.
func (h *Ledger) StoreDeposit(ctx context.Context, req *ledgerapi.StoreDepositRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Ledger handler: processing store deposit request",
		"request_id", req.RequestId,
		"user", req.User)

	requestID, err := model.ParseHash(req.RequestId)
	if err != nil {
		return nil, handleError(err)
	}
	index, err := model.ParseAccountIndex(req.AccountIndex)
	if err != nil {
		return nil, handleError(err)
	}

	err = h.ledgerService.StoreDeposit(ctx, model.StoreDepositParams{
		RequestID:          requestID,
		User:               model.Address(req.User),
		Amount:             req.Amount,
		AccountIndex:       index,
		EncryptedAmount:    req.EncryptedAmount,
		EncryptedKeyUser:   req.EncryptedKeyUser,
		EncryptedKeyServer: req.EncryptedKeyServer,
	})
	if err != nil {
		h.logger.Error("Ledger handler: store deposit failed",
			"request_id", req.RequestId,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Ledger handler: store deposit completed",
		"request_id", req.RequestId,
		"user", req.User)

	return &emptypb.Empty{}, nil
}

// RequestTransfer records a transfer intent and returns its identifier.
func (h *Ledger) RequestTransfer(ctx context.Context, req *ledgerapi.RequestTransferRequest) (*ledgerapi.RequestTransferResponse, error) {
	h.logger.Debug("Ledger handler: processing request transfer request",
		"sender", req.Sender)

	transferID, err := h.ledgerService.RequestTransfer(ctx, model.Address(req.Sender), req.EncryptedReceiverIndex, req.EncryptedAmount)
	if err != nil {
		h.logger.Error("Ledger handler: request transfer failed",
			"sender", req.Sender,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Ledger handler: request transfer completed",
		"sender", req.Sender,
		"transfer_id", transferID)

	return &ledgerapi.RequestTransferResponse{TransferId: transferID.Hex()}, nil
}

// ProcessTransfer fulfills a transfer with new sender and receiver balances.
func (h *Ledger) ProcessTransfer(ctx context.Context, req *ledgerapi.ProcessTransferRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Ledger handler: processing process transfer request",
		"transfer_id", req.TransferId)

	transferID, err := model.ParseHash(req.TransferId)
	if err != nil {
		return nil, handleError(err)
	}
	sender, err := toBalanceUpdate("sender", req.Sender)
	if err != nil {
		return nil, handleError(err)
	}
	receiver, err := toBalanceUpdate("receiver", req.Receiver)
	if err != nil {
		return nil, handleError(err)
	}

	err = h.ledgerService.ProcessTransfer(ctx, model.ProcessTransferParams{
		TransferID: transferID,
		Sender:     sender,
		Receiver:   receiver,
	})
	if err != nil {
		h.logger.Error("Ledger handler: process transfer failed",
			"transfer_id", req.TransferId,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Ledger handler: process transfer completed",
		"transfer_id", req.TransferId)

	return &emptypb.Empty{}, nil
}

func (h *Ledger) GetUserIndex(ctx context.Context, req *ledgerapi.GetUserIndexRequest) (*ledgerapi.GetUserIndexResponse, error) {
	index, err := h.ledgerService.UserIndex(ctx, model.Address(req.User))
	if err != nil {
		h.logger.Error("Ledger handler: get user index failed", "user", req.User, "error", err.Error())
		return nil, handleError(err)
	}
	return &ledgerapi.GetUserIndexResponse{EncryptedIndex: index}, nil
}

func (h *Ledger) GetEncryptedBalance(ctx context.Context, req *ledgerapi.GetEncryptedBalanceRequest) (*ledgerapi.EncryptedBalance, error) {
	index, err := model.ParseAccountIndex(req.AccountIndex)
	if err != nil {
		return nil, handleError(err)
	}

	balance, err := h.ledgerService.EncryptedBalance(ctx, index)
	if err != nil {
		h.logger.Error("Ledger handler: get encrypted balance failed", "account_index", req.AccountIndex, "error", err.Error())
		return nil, handleError(err)
	}
	return fromBalance(balance), nil
}

func (h *Ledger) GetDepositRequest(ctx context.Context, req *ledgerapi.IDRequest) (*ledgerapi.DepositRequest, error) {
	requestID, err := model.ParseHash(req.Id)
	if err != nil {
		return nil, handleError(err)
	}

	deposit, err := h.ledgerService.DepositRequest(ctx, requestID)
	if err != nil {
		h.logger.Error("Ledger handler: get deposit request failed", "request_id", req.Id, "error", err.Error())
		return nil, handleError(err)
	}
	return fromDepositRequest(deposit), nil
}

func (h *Ledger) DepositCompleted(ctx context.Context, req *ledgerapi.IDRequest) (*ledgerapi.CompletedResponse, error) {
	requestID, err := model.ParseHash(req.Id)
	if err != nil {
		return nil, handleError(err)
	}

	done, err := h.ledgerService.DepositCompleted(ctx, requestID)
	if err != nil {
		h.logger.Error("Ledger handler: deposit completed lookup failed", "request_id", req.Id, "error", err.Error())
		return nil, handleError(err)
	}
	return &ledgerapi.CompletedResponse{Completed: done}, nil
}

func (h *Ledger) GetTransferRequest(ctx context.Context, req *ledgerapi.IDRequest) (*ledgerapi.TransferRequest, error) {
	transferID, err := model.ParseHash(req.Id)
	if err != nil {
		return nil, handleError(err)
	}

	transfer, err := h.ledgerService.TransferRequest(ctx, transferID)
	if err != nil {
		h.logger.Error("Ledger handler: get transfer request failed", "transfer_id", req.Id, "error", err.Error())
		return nil, handleError(err)
	}
	return fromTransferRequest(transfer), nil
}

func (h *Ledger) TransferCompleted(ctx context.Context, req *ledgerapi.IDRequest) (*ledgerapi.CompletedResponse, error) {
	transferID, err := model.ParseHash(req.Id)
	if err != nil {
		return nil, handleError(err)
	}

	done, err := h.ledgerService.TransferCompleted(ctx, transferID)
	if err != nil {
		h.logger.Error("Ledger handler: transfer completed lookup failed", "transfer_id", req.Id, "error", err.Error())
		return nil, handleError(err)
	}
	return &ledgerapi.CompletedResponse{Completed: done}, nil
}

func (h *Ledger) EncryptedSupply(ctx context.Context, _ *emptypb.Empty) (*ledgerapi.SupplyResponse, error) {
	supply, err := h.ledgerService.EncryptedSupply(ctx)
	if err != nil {
		h.logger.Error("Ledger handler: get supply failed", "error", err.Error())
		return nil, handleError(err)
	}
	return &ledgerapi.SupplyResponse{Supply: supply.Dec()}, nil
}

func (h *Ledger) GetServerManager(ctx context.Context, _ *emptypb.Empty) (*ledgerapi.ServerManagerResponse, error) {
	authority, err := h.ledgerService.ServerManager(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &ledgerapi.ServerManagerResponse{Address: authority.String()}, nil
}

func (h *Ledger) GetTokenContract(ctx context.Context, _ *emptypb.Empty) (*ledgerapi.TokenContractResponse, error) {
	asset, err := h.ledgerService.TokenContract(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &ledgerapi.TokenContractResponse{Asset: asset}, nil
}

// ListEvents returns one page of stored events after the given ID.
func (h *Ledger) ListEvents(ctx context.Context, req *ledgerapi.ListEventsRequest) (*ledgerapi.ListEventsResponse, error) {
	events, err := h.ledgerService.ListEvents(ctx, req.AfterId, int(req.Limit))
	if err != nil {
		h.logger.Error("Ledger handler: list events failed", "after_id", req.AfterId, "error", err.Error())
		return nil, handleError(err)
	}

	resp := &ledgerapi.ListEventsResponse{Events: make([]*ledgerapi.Event, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, fromEvent(e))
	}
	return resp, nil
}

// SubscribeEvents replays stored events after the requested ID and then
// follows live ones until the client goes away. Live events that do not
// directly follow the last sent one trigger a replay from the store, so the
// stream never skips or repeats an event. The store is also polled on a
// fixed interval, which delivers events the live feed dropped even when no
// later event arrives.
func (h *Ledger) SubscribeEvents(req *ledgerapi.SubscribeEventsRequest, stream grpc.ServerStreamingServer[ledgerapi.Event]) error {
	ctx := stream.Context()

	live, cancel := h.subscriber.Subscribe()
	defer cancel()

	h.logger.Debug("Ledger handler: event subscription opened", "after_id", req.AfterId)

	cursor := req.AfterId
	catchUp := func() error {
		for {
			events, err := h.ledgerService.ListEvents(ctx, cursor, eventPageSize)
			if err != nil {
				return handleError(err)
			}
			for _, e := range events {
				if err := stream.Send(fromEvent(e)); err != nil {
					return err
				}
				cursor = e.ID
			}
			if len(events) < eventPageSize {
				return nil
			}
		}
	}

	if err := catchUp(); err != nil {
		return err
	}

	ticker := time.NewTicker(h.catchUpEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Ledger handler: event subscription closed", "cursor", cursor)
			return nil
		case <-ticker.C:
			if err := catchUp(); err != nil {
				return err
			}
		case e := <-live:
			switch {
			case e.ID <= cursor:
				continue
			case e.ID == cursor+1:
				if err := stream.Send(fromEvent(e)); err != nil {
					return err
				}
				cursor = e.ID
			default:
				if err := catchUp(); err != nil {
					return err
				}
			}
		}
	}
}
