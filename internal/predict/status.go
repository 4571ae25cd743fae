package predict

import (
	"time"

	"housepriced/pkg/types"
)

// Status builds the detailed status response for /status.
func (s *Service) Status() types.StatusResponse {
	now := time.Now()
	resp := types.StatusResponse{
		Ready:                 s.Ready(),
		UptimeSeconds:         int64(now.Sub(s.startTime).Seconds()),
		ServerTimeUnix:        now.Unix(),
		PredictionsTotal:      s.served.Load(),
		PredictionErrorsTotal: s.failed.Load(),
	}
	if s.info != nil {
		info := *s.info
		info.Features = append([]string(nil), s.info.Features...)
		resp.Model = &info
	}
	if s.loadErr != nil {
		resp.LoadError = s.loadErr.Error()
	}
	return resp
}
