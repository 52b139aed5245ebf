package ops

//go:generate mockgen -source=ops.go -destination=mock_ops.go -package=ops

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/dto"
	"github.com/GlebRadaev/fieldbook/pkg/utils"
	"go.uber.org/zap"
)

type Sweeper interface {
	Sweep(ctx context.Context) (int64, error)
	Threshold() time.Duration
}

type OpsHandler struct {
	sweeper Sweeper
}

func New(sweeper Sweeper) *OpsHandler {
	return &OpsHandler{
		sweeper: sweeper,
	}
}

// SweepExpired godoc
//
//	@Summary		Fail expired reservations now
//	@Description	Runs one expiry pass outside the periodic schedule.
//	@Tags			Ops
//	@Produce		json
//	@Success		200	{object}	dto.SweepResponseDTO
//	@Failure		500	{object}	utils.Response
//	@Router			/api/v1/ops/sweep-expired [post]
func (h *OpsHandler) SweepExpired(w http.ResponseWriter, r *http.Request) {
	n, err := h.sweeper.Sweep(r.Context())
	if err != nil {
		zap.L().Error("Failed to sweep expired orders", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{
		Failed:    n,
		Threshold: h.sweeper.Threshold().String(),
	})
}
