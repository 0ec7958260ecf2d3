package ethereum

import (
	"context"
	"errors"
	"fmt"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/openfund/ofs/internal/config"
)

// Client 链上客户端，仅用于出资交易的回执确认
type Client struct {
	client        *ethclient.Client
	confirmations int
}

// Init 初始化链上客户端；链上验证未启用时返回 nil
func Init(cfg config.ChainConfig) (*Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain rpc: %w", err)
	}

	return &Client{
		client:        client,
		confirmations: cfg.Confirmations,
	}, nil
}

// IsValidAddress 校验钱包地址格式
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsValidTxHash 校验交易哈希格式（0x + 64位十六进制）
func IsValidTxHash(hash string) bool {
	if len(hash) != 66 || hash[:2] != "0x" {
		return false
	}
	for _, c := range hash[2:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// GetLatestBlock 获取最新区块号
func (c *Client) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}

// IsTransactionConfirmed 检查交易是否达到确认区块数
// 交易尚未上链时返回 false 且不报错
func (c *Client) IsTransactionConfirmed(ctx context.Context, txHash string) (bool, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return false, nil
		}
		return false, err
	}
	if receipt == nil {
		return false, nil
	}

	latestBlock, err := c.GetLatestBlock(ctx)
	if err != nil {
		return false, err
	}

	return latestBlock >= receipt.BlockNumber.Uint64()+uint64(c.confirmations), nil
}

// Close 关闭底层连接
func (c *Client) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}
