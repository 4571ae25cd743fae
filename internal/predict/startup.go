package predict

import (
	"fmt"

	"github.com/rs/zerolog"

	"housepriced/internal/model"
)

// Open loads the artifact at path and builds a Service.
//
// With strict set, a load failure is returned and no Service is built. Without
// it the failure is logged and the Service starts without a predictor: the
// health route still reports online and every prediction fails.
func Open(path string, strict bool, log zerolog.Logger) (*Service, error) {
	log.Info().Str("path", path).Bool("strict", strict).Msg("loading model")
	m, err := model.Load(path)
	if err != nil {
		if strict {
			return nil, fmt.Errorf("load model: %w", err)
		}
		log.Error().Err(err).Str("path", path).Msg("model load failed; serving without a predictor")
		return New(Config{LoadErr: err}), nil
	}
	info := m.Info()
	log.Info().Str("kind", info.Kind).Int("trees", info.Trees).Strs("features", info.Features).Msg("model loaded")
	return New(Config{Predictor: m, Model: &info}), nil
}
