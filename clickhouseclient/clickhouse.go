package clickhouseclient

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"ICSLogPump/config"
	"ICSLogPump/models"
	"ICSLogPump/transform"
)

type Client struct {
	conn   clickhouse.Conn
	Table  string
	Logger *zap.Logger
}

// New opens a ClickHouse connection from the config.
func New(cfg config.ClickHouseConfig, logger *zap.Logger) (*Client, error) {
	protocol := clickhouse.Native
	if cfg.Protocol == "http" {
		protocol = clickhouse.HTTP
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Address},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: 5 * time.Second,
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
		Protocol:    protocol,
	})
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}
	return &Client{conn: conn, Table: cfg.Table, Logger: logger}, nil
}

// InsertBatch converts records to typed rows and sends them in one batch.
func (c *Client) InsertBatch(ctx context.Context, records []models.Record) error {
	batch, err := c.conn.PrepareBatch(ctx,
		"INSERT INTO "+c.Table+" ("+
			"EventTime, RawTimestamp, LineID, Hostname, MsgCode, MsgType, MsgDescription, "+
			"SourceType, Network, SourceIP, MsgData, SourceFile, InsertedAt"+
			") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)")
	if err != nil {
		c.Logger.Error("prepare batch", zap.Error(err))
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, rec := range records {
		row := transform.ToEventRow(rec)
		err = batch.Append(
			row.EventTime,
			row.RawTimestamp,
			row.LineID,
			row.Hostname,
			row.MsgCode,
			row.MsgType,
			row.MsgDescription,
			row.SourceType,
			row.Network,
			row.SourceIP,
			row.MsgData,
			row.SourceFile,
			row.InsertedAt,
		)
		if err != nil {
			c.Logger.Error("append batch", zap.Error(err), zap.String("file", rec.SourceFile))
			return fmt.Errorf("append: %w", err)
		}
	}
	return batch.Send()
}

func (c *Client) Close() error {
	return c.conn.Close()
}
