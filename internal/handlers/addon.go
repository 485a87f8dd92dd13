package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"aidraft-addon/internal/addon"
	"aidraft-addon/internal/cards"
	"aidraft-addon/internal/models"
)

type EventRouter interface {
	Route(ctx context.Context, ev *models.AddonEvent) (cards.State, error)
}

type ActionDispatcher interface {
	Dispatch(ctx context.Context, action string, ev *models.AddonEvent) (models.ActionResponse, error)
	Actions() []string
}

type AddonHandler struct {
	router     EventRouter
	dispatcher ActionDispatcher
	builder    *cards.Builder
	log        zerolog.Logger
}

func NewAddonHandler(router EventRouter, dispatcher ActionDispatcher, builder *cards.Builder, log zerolog.Logger) *AddonHandler {
	return &AddonHandler{
		router:     router,
		dispatcher: dispatcher,
		builder:    builder,
		log:        log.With().Str("component", "addon-handler").Logger(),
	}
}

// Homepage godoc
// @Summary Homepage and message-open trigger
// @Description Returns the compose form, or a reply preview when the event carries a Gmail message.
// @Tags addon
// @Accept json
// @Produce json
// @Param event body models.AddonEvent true "Add-on event object"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /addon/homepage [post]
func (h *AddonHandler) Homepage(c *gin.Context) {
	var ev models.AddonEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
		return
	}

	state, err := h.router.Route(c.Request.Context(), &ev)
	if err != nil {
		h.log.Error().Err(err).Str("message_id", ev.MessageID()).Msg("routing failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "routing_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.PushCard(h.builder.Build(state)))
}

// Action godoc
// @Summary Run a card action
// @Description Button callbacks. Answers with an updated card, or a notification for create-calendar-event.
// @Tags addon
// @Accept json
// @Produce json
// @Param action path string true "Action name" Enums(generate-compose, regenerate-compose, go-back-to-compose, generate-reply, refresh-latest-reply, summarize-email, create-calendar-event, go-back-to-reply)
// @Param event body models.AddonEvent true "Add-on event object"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /addon/actions/{action} [post]
func (h *AddonHandler) Action(c *gin.Context) {
	action := c.Param("action")

	var ev models.AddonEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.dispatcher.Dispatch(c.Request.Context(), action, &ev)
	if errors.Is(err, addon.ErrUnknownAction) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:      "unknown_action",
			Message:    err.Error(),
			Suggestion: h.suggest(action),
		})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("action", action).Msg("dispatch failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// suggest returns the closest known action name, or "".
func (h *AddonHandler) suggest(action string) string {
	matches := fuzzy.Find(action, h.dispatcher.Actions())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
