package funds

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/internal/dto"
	fundservice "github.com/nvera/credicuotas/internal/service/fundservice"
	"github.com/nvera/credicuotas/pkg/auth"
	"github.com/nvera/credicuotas/pkg/utils"
)

type Service interface {
	GetFund(ctx context.Context, userID int) (decimal.Decimal, error)
}

type FundHandler struct {
	fundService Service
}

func New(fundService Service) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// GetFund godoc
//
//	@Summary		Get accumulated fund balance
//	@Description	Retrieve the authenticated borrower's accumulated interest-margin fund.
//	@Tags			Fondo
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FundResponseDTO	"Fund balance"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"User not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/fund [get]
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.fundService.GetFund(r.Context(), userID)
	if err != nil {
		if errors.Is(err, fundservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundResponseDTO{FundBalance: balance.String()})
}
