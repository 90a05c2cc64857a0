package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Time logs and records the duration of op through the logger carried by ctx. Use as
//
//	defer obs.Time(ctx, "geo.Geocode")(&err)
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		logger := log.Ctx(ctx)

		if errp != nil && *errp != nil {
			operationDuration.WithLabelValues(op, "error").Observe(dur.Seconds())
			logger.Warn().Str("op", op).Int64("dur_ms", dur.Milliseconds()).Err(*errp).Msg("operation failed")
			return
		}
		operationDuration.WithLabelValues(op, "ok").Observe(dur.Seconds())
		logger.Debug().Str("op", op).Int64("dur_ms", dur.Milliseconds()).Msg("operation done")
	}
}
