package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

// AccountHandler - 계좌 CRUD와 입출금 핸들러
type AccountHandler struct {
	logger *zap.Logger
}

func NewAccountHandler(logger *zap.Logger) *AccountHandler {
	return &AccountHandler{logger: logger}
}

// ListAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} model.AccountListResponse
// @Failure 401,502 {object} model.ErrorResponse
// @Router /api/v1/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := workspaceFrom(c).Accounts.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.AccountListResponse{Status: "success", Data: accounts})
}

// GetAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.AccountResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	acc, err := workspaceFrom(c).Accounts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.AccountResponse{Status: "success", Data: acc})
}

// CreateAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body model.Account true "Account"
// @Success 201 {object} model.AccountResponse
// @Failure 400,401,502 {object} model.ErrorResponse
// @Router /api/v1/accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req model.Account
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	created, err := workspaceFrom(c).Accounts.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, model.AccountResponse{Status: "success", Data: created})
}

// UpdateAccount godoc
// @Summary Replace an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body model.Account true "Account"
// @Success 200 {object} model.AccountResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.Account
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	updated, err := workspaceFrom(c).Accounts.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.AccountResponse{Status: "success", Data: updated})
}

// DeleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.StatusResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := workspaceFrom(c).Accounts.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}

// Deposit godoc
// @Summary Deposit into an account
// @Description Re-reads the balance, adds valor and writes the whole account back.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body model.MovementRequest true "Account ID and amount"
// @Success 200 {object} model.AccountResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/accounts/deposit [post]
func (h *AccountHandler) Deposit(c *gin.Context) {
	var req model.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	acc, err := workspaceFrom(c).Accounts.Deposit(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.AccountResponse{Status: "success", Data: acc})
}

// Withdraw godoc
// @Summary Withdraw from an account
// @Description Fails with 422 and no write when the balance would go negative.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body model.MovementRequest true "Account ID and amount"
// @Success 200 {object} model.AccountResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /api/v1/accounts/withdraw [post]
func (h *AccountHandler) Withdraw(c *gin.Context) {
	var req model.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	acc, err := workspaceFrom(c).Accounts.Withdraw(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.AccountResponse{Status: "success", Data: acc})
}
