// Package custody moves the raw custody asset behind deposits.
package custody

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

var (
	_ model.Custody = (*Remote)(nil)
	_ model.Custody = (*Disabled)(nil)
)

// ErrTransferRejected is returned when the custody endpoint refuses a transfer.
var ErrTransferRejected = errors.New("custody transfer rejected")

const transfersPath = "/v1/transfers"

type transferRequest struct {
	Reference string `json:"reference"`
	Asset     string `json:"asset"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    int64  `json:"amount"`
}

// Remote executes transfers against an HTTP custody endpoint.
type Remote struct {
	client   *http.Client
	endpoint string
	logger   *logger.Logger
}

func NewRemote(endpoint string, timeout time.Duration, logger *logger.Logger) *Remote {
	return &Remote{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger,
	}
}

// Transfer posts the transfer and succeeds only on a 2xx answer.
func (r *Remote) Transfer(ctx context.Context, transfer model.CustodyTransfer) error {
	body, err := json.Marshal(transferRequest{
		Reference: transfer.Reference,
		Asset:     transfer.Asset,
		From:      transfer.From,
		To:        transfer.To,
		Amount:    transfer.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to encode custody transfer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+transfersPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build custody request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call custody endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.logger.Warn("Custody: transfer rejected",
			"status", resp.StatusCode, "reference", transfer.Reference, "from", transfer.From, "asset", transfer.Asset)
		return fmt.Errorf("%w: status %d: %s", ErrTransferRejected, resp.StatusCode, strings.TrimSpace(string(reason)))
	}

	r.logger.Debug("Custody: transfer completed",
		"reference", transfer.Reference, "from", transfer.From, "to", transfer.To, "amount", transfer.Amount)

	return nil
}

// Disabled accepts every transfer without moving anything.
type Disabled struct {
	logger *logger.Logger
}

func NewDisabled(logger *logger.Logger) *Disabled {
	return &Disabled{logger: logger}
}

func (d *Disabled) Transfer(_ context.Context, transfer model.CustodyTransfer) error {
	d.logger.Warn("Custody: transfers disabled, skipping",
		"reference", transfer.Reference, "from", transfer.From, "to", transfer.To, "amount", transfer.Amount)
	return nil
}
