package handlers

import (
	"net/http"

	"gestao_compras/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SetupHandler is public so a fresh installation can be diagnosed before
// any user exists.
type SetupHandler struct {
	usecase usecase.ISetupUseCase
}

func NewSetupHandler(uc usecase.ISetupUseCase) *SetupHandler {
	return &SetupHandler{usecase: uc}
}

// Status godoc
// @Summary Probe every required table
// @Tags setup
// @Produce json
// @Success 200 {object} usecase.SetupStatus
// @Failure 503 {object} usecase.SetupStatus
// @Router /setup/status [get]
func (h *SetupHandler) Status(c *gin.Context) {
	st := h.usecase.Check(c.Request.Context())
	code := http.StatusOK
	if len(st.MissingTables) > 0 {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, st)
}

func (h *SetupHandler) Script(c *gin.Context) {
	c.String(http.StatusOK, h.usecase.Script())
}
