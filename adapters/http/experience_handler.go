package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type ExperienceHandler struct {
	useCase *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{useCase: uc}
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("read experience body", err))
		return
	}
	e, err := h.useCase.Create(c.Request.Context(), body)
	if err != nil {
		c.Error(err).SetMeta(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.useCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	e, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("read experience body", err))
		return
	}
	e, err := h.useCase.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.Error(err).SetMeta(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted"})
}
