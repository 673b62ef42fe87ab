package handler

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/model"
)

func toBalanceUpdate(side string, in *ledgerapi.BalanceUpdate) (model.BalanceUpdate, error) {
	if in == nil {
		return model.BalanceUpdate{}, fmt.Errorf("%w: %s balance is required", model.ErrValidation, side)
	}

	index, err := model.ParseAccountIndex(in.GetAccountIndex())
	if err != nil {
		return model.BalanceUpdate{}, err
	}

	return model.BalanceUpdate{
		Index:              index,
		EncryptedAmount:    in.GetEncryptedAmount(),
		EncryptedKeyUser:   in.GetEncryptedKeyUser(),
		EncryptedKeyServer: in.GetEncryptedKeyServer(),
	}, nil
}

// timestamp leaves unset times out of the message.
func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromBalance(b model.EncryptedBalance) *ledgerapi.EncryptedBalance {
	return &ledgerapi.EncryptedBalance{
		EncryptedAmount:    b.EncryptedAmount,
		EncryptedKeyUser:   b.EncryptedKeyUser,
		EncryptedKeyServer: b.EncryptedKeyServer,
		Timestamp:          timestamp(b.Timestamp),
		Exists:             b.Exists,
	}
}

func fromDepositRequest(r model.DepositRequest) *ledgerapi.DepositRequest {
	return &ledgerapi.DepositRequest{
		RequestId:      r.RequestID.Hex(),
		User:           r.User.String(),
		Amount:         r.Amount,
		Timestamp:      timestamp(r.Timestamp),
		Ledger:         r.Ledger,
		EncryptedIndex: r.EncryptedIndex,
		Exists:         r.Exists,
	}
}

func fromTransferRequest(r model.TransferRequest) *ledgerapi.TransferRequest {
	return &ledgerapi.TransferRequest{
		TransferId:             r.TransferID.Hex(),
		Sender:                 r.Sender.String(),
		EncryptedReceiverIndex: r.EncryptedReceiverIndex,
		EncryptedAmount:        r.EncryptedAmount,
		Timestamp:              timestamp(r.Timestamp),
		Ledger:                 r.Ledger,
		Exists:                 r.Exists,
	}
}

func fromEvent(e model.Event) *ledgerapi.Event {
	return &ledgerapi.Event{
		Id:        e.ID,
		Ledger:    e.Ledger,
		Kind:      string(e.Kind),
		Payload:   e.Payload,
		CreatedAt: timestamp(e.CreatedAt),
	}
}
