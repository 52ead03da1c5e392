package usecase

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	"MetricPull/pkg/config"
	"MetricPull/pkg/util"
)

const PanelSession = "session"

// NewSessionPanel wires the session-context panel. The AVWAP anchor comes
// from config (RFC3339 or unix seconds); when unset the server anchors at
// UTC day start.
func NewSessionPanel(cfg *config.Config, src repository.SessionSource, deps PanelDeps) *Panel[models.SessionSnapshot] {
	symbol := cfg.Symbol
	var anchorTs int64
	if t, ok := util.ParseTime(cfg.Panels.Session.AvwapAnchor); ok {
		anchorTs = t.UnixMilli()
	}
	build := func(ctx context.Context) (*models.SessionSnapshot, error) {
		var (
			vwap     *models.VwapDailyResponse
			avwap    *models.AvwapResponse
			hilo     *models.PrevDayHiLoResponse
			or       *models.OpeningRangeResponse
			sessions *models.SessionsResponse
			macro    *models.MacroFlagResponse
		)
		err := RunBatch(ctx,
			FetchInto("vwap-daily", &vwap, func(ctx context.Context) (*models.VwapDailyResponse, error) {
				return src.VwapDaily(ctx, symbol)
			}),
			FetchInto("avwap", &avwap, func(ctx context.Context) (*models.AvwapResponse, error) {
				return src.Avwap(ctx, symbol, anchorTs)
			}),
			FetchInto("prev-day-hilo", &hilo, func(ctx context.Context) (*models.PrevDayHiLoResponse, error) {
				return src.PrevDayHiLo(ctx, symbol)
			}),
			FetchInto("opening-range-60", &or, func(ctx context.Context) (*models.OpeningRangeResponse, error) {
				return src.OpeningRange60(ctx, symbol)
			}),
			FetchInto("sessions", &sessions, func(ctx context.Context) (*models.SessionsResponse, error) {
				return src.Sessions(ctx)
			}),
			FetchInto("macro-flag", &macro, func(ctx context.Context) (*models.MacroFlagResponse, error) {
				return src.MacroFlag(ctx)
			}),
		)
		if err != nil {
			return nil, err
		}

		dayStart := sessions.UtcDayStart
		asia := sessions.Asia
		london := sessions.London
		newYork := sessions.NewYork
		highImpact := macro.HasHighImpact
		snap := &models.SessionSnapshot{
			VwapDaily:       vwap.Vwap,
			Avwap:           avwap.Avwap,
			AvwapAnchor:     avwap.AnchorTs,
			PrevDayHigh:     hilo.PrevDayHigh,
			PrevDayLow:      hilo.PrevDayLow,
			PrevOpenTime:    hilo.PrevOpenTime,
			OrHigh:          or.OrHigh,
			OrLow:           or.OrLow,
			OrRange:         or.Range,
			UtcDayStart:     &dayStart,
			Asia:            &asia,
			London:          &london,
			NewYork:         &newYork,
			CurrentSession:  sessions.CurrentSession,
			MacroHighImpact: &highImpact,
			MacroKeyEvents:  macro.KeyEvents,
			Sources: map[string]string{
				"vwap-daily":       vwap.Source,
				"avwap":            avwap.Source,
				"prev-day-hilo":    hilo.Source,
				"opening-range-60": or.Source,
				"sessions":         sessions.Source,
				"macro-flag":       macro.Source,
			},
		}
		if macro.Note != "" {
			n := macro.Note
			snap.MacroNote = &n
		}
		return snap, nil
	}
	return NewPanel(PanelSession, cfg.Panels.Session.Interval, build, deps)
}
