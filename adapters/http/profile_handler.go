package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("read profile body", err))
		return
	}
	p, err := h.profileUseCase.Create(c.Request.Context(), body)
	if err != nil {
		c.Error(err).SetMeta(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProfile answers GET /api/profile with the first stored profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileUseCase.GetFirst(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	p, err := h.profileUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("read profile body", err))
		return
	}
	p, err := h.profileUseCase.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.Error(err).SetMeta(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
