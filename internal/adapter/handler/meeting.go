package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/adapter/dto/common"
	meetingDTO "github.com/quickmom/quickmom/internal/adapter/dto/meeting"
	"github.com/quickmom/quickmom/internal/adapter/presenter"
	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/infrastructure/http/middleware"
	"github.com/quickmom/quickmom/internal/usecase/meeting"
)

// Meeting handles meeting aggregate HTTP requests
type Meeting struct {
	meetingService *meeting.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// List returns the meetings the principal owns or attends
// GET /api/meetings
func (h *Meeting) List(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.meetingService.List(c.Request().Context(), user)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingResponses(meetings))
}

// Create creates a meeting owned by the principal
// POST /api/meetings
func (h *Meeting) Create(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Create(c.Request().Context(), user, meeting.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		AttendeeIDs: req.AttendeeIDs,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToMeetingResponse(m))
}

// Get returns one meeting with its nested entities
// GET /api/meetings/:meeting_id
func (h *Meeting) Get(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Get(c.Request().Context(), user, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(m))
}

// Delete removes a meeting and everything it owns
// DELETE /api/meetings/:meeting_id
func (h *Meeting) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), user, meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Meeting deleted"})
}

// CreateTopic appends a topic to a meeting
// POST /api/meetings/:meeting_id/topics
func (h *Meeting) CreateTopic(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateTopicRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	topic, err := h.meetingService.CreateTopic(c.Request().Context(), user, meetingID, req.Title)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToTopicResponse(topic))
}

// DeleteTopic removes a topic and its nested entities
// DELETE /api/meetings/:meeting_id/topics/:topic_id
func (h *Meeting) DeleteTopic(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	topicID, err := parseIDParam(c, "topic_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteTopic(c.Request().Context(), user, meetingID, topicID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Topic deleted"})
}

// CreateDiscussionPoint records a point under a topic
// POST /api/meetings/:meeting_id/topics/:topic_id/points
func (h *Meeting) CreateDiscussionPoint(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	topicID, err := parseIDParam(c, "topic_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateDiscussionPointRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	point, err := h.meetingService.CreateDiscussionPoint(c.Request().Context(), user, meetingID, topicID, req.Text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToDiscussionPointResponse(point))
}

// CreateActionItem records an action item against a meeting
// POST /api/meetings/:meeting_id/action-items
func (h *Meeting) CreateActionItem(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.CreateActionItem(c.Request().Context(), user, meetingID, meeting.CreateActionItemInput{
		Task:       req.Task,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
		TopicID:    req.TopicID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToActionItemResponse(item))
}

// UpdateActionItem toggles the completed flag of an action item
// PUT /api/action-items/:item_id
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.UpdateActionItem(c.Request().Context(), user, itemID, req.Completed)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToActionItemResponse(item))
}

// Transcribe generates and stores the simulated transcript
// POST /api/meetings/:meeting_id/transcribe
func (h *Meeting) Transcribe(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseIDParam(c, "meeting_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	transcript, err := h.meetingService.Transcribe(c.Request().Context(), user, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, meetingDTO.TranscriptionResponse{Transcription: transcript})
}

// principal pulls the authenticated user set by the session middleware.
func principal(c echo.Context) (*entities.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*entities.User)
	if !ok || user == nil {
		return nil, apperrors.ErrUnauthenticated()
	}
	return user, nil
}
