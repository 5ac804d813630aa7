package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/virtual-tryon-platform/internal/analytics"
	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/catalog"
	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/queue"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
	queue_publisher "github.com/iliyamo/virtual-tryon-platform/internal/service"
	"github.com/iliyamo/virtual-tryon-platform/internal/store"
)

// TryOnHandler drives the try-on store over HTTP. It coordinates the
// surrounding collaborators the store itself stays ignorant of: the
// catalog (product lookup on select), the camera device (acquired on
// start, released by the store on end), the analytics gauge and the
// completion event queue.
type TryOnHandler struct {
	TryOn   *store.TryOnStore
	Session *store.AuthStore
	Catalog catalog.Source
	Camera  backend.CameraDevice
	Stats   *analytics.Aggregator
}

func NewTryOnHandler(t *store.TryOnStore, s *store.AuthStore, c catalog.Source, cam backend.CameraDevice, a *analytics.Aggregator) *TryOnHandler {
	return &TryOnHandler{TryOn: t, Session: s, Catalog: c, Camera: cam, Stats: a}
}

type selectReq struct {
	ProductID string `json:"product_id"`
}
type endReq struct {
	Converted bool `json:"converted"`
	Feedback  *int `json:"feedback"`
}

// Select resolves the product in the catalog and makes it the current
// selection. An in-progress session is not affected; the selection
// applies to the next start.
func (h *TryOnHandler) Select(c echo.Context) error {
	var req selectReq
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog lookup failed"})
	}
	h.TryOn.SelectProduct(p)
	return c.JSON(http.StatusOK, toProductDTO(p))
}

// Start begins a try-on session for the logged-in user, acquires the
// camera stream and kicks off recommendation generation in the
// background. Starting while a session is active replaces it; the
// displaced session is still reported downstream as completed.
func (h *TryOnHandler) Start(c echo.Context) error {
	userID := h.Session.CurrentUserID()
	if userID == "" {
		// Stateless client whose login happened before a restart; the
		// JWT middleware already vouched for the subject claim.
		if sub, ok := c.Get("user_id").(string); ok {
			userID = sub
		}
	}

	sess, replaced := h.TryOn.StartTryOn(userID)
	if replaced != nil {
		h.publishCompleted(*replaced)
	} else {
		h.Stats.SessionStarted()
	}

	if h.Camera != nil {
		stream, err := h.Camera.Acquire()
		if err != nil {
			log.Printf("tryon: camera acquire failed: %v", err)
		} else {
			h.TryOn.SetCameraStream(stream)
		}
	}

	// Recommendations load alongside the session, the way the studio
	// view fires them on activation. Last call wins; errors only log.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.TryOn.GenerateRecommendations(ctx, userID); err != nil {
			log.Printf("tryon: recommendations failed: %v", err)
		}
	}()

	return c.JSON(http.StatusCreated, toSessionDTO(sess))
}

// End closes the current session, releasing the camera stream, and
// publishes the completion event. Ending an idle store is a no-op.
func (h *TryOnHandler) End(c echo.Context) error {
	var req endReq
	_ = c.Bind(&req) // body optional

	if req.Converted {
		h.TryOn.MarkConverted()
	}
	ended := h.TryOn.EndTryOn()
	if ended == nil {
		return c.NoContent(http.StatusNoContent)
	}
	if req.Feedback != nil {
		ended.Feedback = req.Feedback
	}
	h.Stats.SessionEnded()
	h.publishCompleted(*ended)
	return c.JSON(http.StatusOK, toSessionDTO(*ended))
}

// Capture takes a still frame from the live camera stream and counts it
// as an interaction.
func (h *TryOnHandler) Capture(c echo.Context) error {
	snap := h.TryOn.Snapshot()
	if !snap.IsActive || snap.CameraStream == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no active try-on with camera"})
	}
	frame, err := snap.CameraStream.Capture()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "capture failed"})
	}
	h.TryOn.RecordInteraction()
	return c.Blob(http.StatusOK, "image/jpeg", frame)
}

// Interact counts one user interaction against the current session.
func (h *TryOnHandler) Interact(c echo.Context) error {
	h.TryOn.RecordInteraction()
	return c.NoContent(http.StatusNoContent)
}

// Get returns the current try-on state.
func (h *TryOnHandler) Get(c echo.Context) error {
	snap := h.TryOn.Snapshot()
	resp := echo.Map{
		"is_active":  snap.IsActive,
		"has_camera": snap.CameraStream != nil,
	}
	if snap.SelectedProduct != nil {
		resp["selected_product"] = toProductDTO(*snap.SelectedProduct)
	}
	if snap.CurrentSession != nil {
		resp["current_session"] = toSessionDTO(*snap.CurrentSession)
	}
	return c.JSON(http.StatusOK, resp)
}

// Recommendations returns the cached recommendation list. With
// ?refresh=true the list is regenerated synchronously first.
func (h *TryOnHandler) Recommendations(c echo.Context) error {
	if c.QueryParam("refresh") == "true" {
		userID := h.Session.CurrentUserID()
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := h.TryOn.GenerateRecommendations(ctx, userID); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "recommendation backend unavailable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"recommendations": toProductDTOs(h.TryOn.Snapshot().Recommendations),
	})
}

// publishCompleted hands a finished session to the analytics queue.
// Publishing is fire-and-forget: a broker outage must never fail the
// user-facing request.
func (h *TryOnHandler) publishCompleted(sess model.TryOnSession) {
	ev := queue.TryOnCompletedEvent{
		SessionID:    sess.ID,
		UserID:       sess.UserID,
		ProductID:    sess.ProductID,
		StartedAt:    sess.StartedAt.UTC().Format(time.RFC3339),
		DurationMS:   sess.Duration.Milliseconds(),
		Interactions: sess.Interactions,
		Converted:    sess.Converted,
		Feedback:     sess.Feedback,
		EndedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishTryOnCompleted(ctx, ev)
	}()
}
