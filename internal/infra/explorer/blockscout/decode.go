package blockscout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/paynotify/internal/pkg/types"
	"github.com/gabapcia/paynotify/internal/pkg/validator"
	"github.com/gabapcia/paynotify/internal/transfers"
)

// TransferTopic is keccak256("Transfer(address,address,uint256)").
const TransferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

// ErrNotTransferLog is returned for logs that do not carry an indexed sender
// and recipient.
var ErrNotTransferLog = errors.New("log is not a transfer event")

// addressFromTopic extracts the address left-padded into a 32-byte topic.
func addressFromTopic(topic string) (string, error) {
	hex, ok := strings.CutPrefix(strings.ToLower(topic), "0x")
	if !ok || len(hex) != 64 {
		return "", fmt.Errorf("%w: topic %q is not a 32-byte word", ErrNotTransferLog, topic)
	}
	if strings.Trim(hex[:24], "0") != "" {
		return "", fmt.Errorf("%w: topic %q is not a padded address", ErrNotTransferLog, topic)
	}

	return "0x" + hex[24:], nil
}

// DecodeTransferLog decodes an ERC-20 Transfer(address,address,uint256) log.
// currency is copied to the transfer as is.
func DecodeTransferLog(log Log, currency string) (transfers.Transfer, error) {
	if len(log.Topics) < 3 {
		return transfers.Transfer{}, fmt.Errorf("%w: %d topics", ErrNotTransferLog, len(log.Topics))
	}

	sender, err := addressFromTopic(log.Topics[1])
	if err != nil {
		return transfers.Transfer{}, err
	}

	recipient, err := addressFromTopic(log.Topics[2])
	if err != nil {
		return transfers.Transfer{}, err
	}

	value, err := types.Hex(log.Data).BigInt()
	if err != nil {
		return transfers.Transfer{}, fmt.Errorf("decode value: %w", err)
	}

	blockNumber, err := types.Hex(log.BlockNumber).Uint64()
	if err != nil {
		return transfers.Transfer{}, fmt.Errorf("decode block number: %w", err)
	}

	timestamp, err := types.Hex(log.TimeStamp).Uint64()
	if err != nil {
		return transfers.Transfer{}, fmt.Errorf("decode timestamp: %w", err)
	}

	logIndex, err := types.Hex(log.LogIndex).Uint64()
	if err != nil {
		return transfers.Transfer{}, fmt.Errorf("decode log index: %w", err)
	}

	transfer := transfers.Transfer{
		Sender:      sender,
		Recipient:   recipient,
		Value:       value.String(),
		BlockNumber: blockNumber,
		TxHash:      strings.ToLower(log.TransactionHash),
		Timestamp:   int64(timestamp),
		Currency:    currency,
		LogIndex:    logIndex,
	}

	if err := validator.Validate(transfer); err != nil {
		return transfers.Transfer{}, err
	}

	return transfer, nil
}
