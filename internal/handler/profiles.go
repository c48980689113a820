package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/sistema-bancario/backend/internal/template"
)

// DefaultProfiles - 팀 소개 카드
var DefaultProfiles = []model.Profile{
	{Name: "Alice Santos", Bio: "Frontend developer, React / Next.js", Image: "/alice.svg"},
	{Name: "Bruno Lima", Bio: "Fullstack developer and DevRel", Image: "/bruno.svg"},
	{Name: "Carla Souza", Bio: "UI/UX designer"},
}

type ProfileHandler struct {
	profiles []model.Profile
	layout   string
}

func NewProfileHandler(profiles []model.Profile, layout string) *ProfileHandler {
	if layout == "" {
		layout = template.DefaultCard
	}
	return &ProfileHandler{profiles: profiles, layout: layout}
}

// ListProfiles godoc
// @Summary List rendered profile cards
// @Description Requires a logged-in session. Returns 403 otherwise.
// @Tags profiles
// @Produce json
// @Success 200 {object} model.ProfileListResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, model.ProfileListResponse{
		Status: "success",
		Data:   template.RenderCards(h.layout, h.profiles),
	})
}
