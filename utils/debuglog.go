package utils

import (
	"context"
	"log/slog"

	"github.com/tn5250go/tn5250"
)

const LevelNone slog.Level = -8

type DebugLogConfig struct {
	EncounteredErrorLevel slog.Level
	ProcessedRecordLevel  slog.Level
	NegotiatedDeviceLevel slog.Level
	OIAChangeLevel        slog.Level
}

// DebugLog registers for a session's hooks and OIA notifications and
// writes everything that happens to a structured logger, with a
// configurable level per event category.
type DebugLog struct {
	logger *slog.Logger
	config DebugLogConfig
}

func NewDebugLog(session *tn5250.Session, logger *slog.Logger, config DebugLogConfig) *DebugLog {
	log := &DebugLog{logger: logger, config: config}

	session.RegisterEncounteredErrorHook(log.logError)
	session.RegisterProcessedRecordHook(log.logRecord)
	session.RegisterNegotiatedDeviceHook(log.logDevice)
	session.OIA().AddListener(tn5250.OIAListenerFunc(log.logOIAChange))

	return log
}

func (l *DebugLog) logError(session *tn5250.Session, err error) {
	l.logger.LogAttrs(context.Background(), l.config.EncounteredErrorLevel, "Encountered error",
		slog.Any("error", err))
}

func (l *DebugLog) logRecord(session *tn5250.Session, record *tn5250.Record) {
	l.logger.LogAttrs(context.Background(), l.config.ProcessedRecordLevel, "Processed record",
		slog.Int("opcode", int(record.Opcode())),
		slog.Int("size", record.Size()))
}

func (l *DebugLog) logDevice(session *tn5250.Session, device tn5250.DeviceConfig) {
	l.logger.LogAttrs(context.Background(), l.config.NegotiatedDeviceLevel, "Negotiated device",
		slog.String("type", device.Type.String()),
		slog.String("name", device.Name),
		slog.Bool("bypass", device.Bypass),
		slog.Bool("recordMode", device.RecordMode),
		slog.Bool("responseMode", device.ResponseMode))
}

func (l *DebugLog) logOIAChange(oia *tn5250.OIA, change tn5250.OIAChange) {
	l.logger.LogAttrs(context.Background(), l.config.OIAChangeLevel, "OIA changed",
		slog.String("category", change.String()),
		slog.Bool("keyboardLocked", oia.IsKeyboardLocked()),
		slog.String("inputInhibited", oia.InputInhibited().String()))
}
