package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/timezone"
	usecase "github.com/soloflowhq/soloflow-api/internal/usecase/autoresponse"
)

type MessageHandler struct {
	db         *gorm.DB
	getDefault *usecase.GetDefaultTemplate
}

func NewMessageHandler(db *gorm.DB, getDefault *usecase.GetDefaultTemplate) *MessageHandler {
	return &MessageHandler{db: db, getDefault: getDefault}
}

func (h *MessageHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Preload("Client").Where("user_id = ?", userID)

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var messages []models.Message
	if err := q.Order("created_at DESC").Limit(200).Find(&messages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	c.JSON(http.StatusOK, messages)
}

type InboundMessageRequest struct {
	ClientID   *uint  `json:"client_id"`
	Category   string `json:"category"`
	Body       string `json:"body" binding:"required"`
	ExternalID string `json:"external_id"`
}

type InboundMessageResponse struct {
	Message *models.Message `json:"message"`
	Reply   *models.Message `json:"reply,omitempty"`
}

// CreateInbound records an incoming message and, when the category has a
// default template, sends the rendered auto-reply as an outbound message in
// the same request.
func (h *MessageHandler) CreateInbound(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	var req InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid message payload.")
		return
	}

	category := req.Category
	if category == "" {
		category = string(domain.TypeGeneral)
	}
	if !domain.Type(category).Valid() {
		httperr.BadRequest(c, "invalid_type", "Unknown message category.")
		return
	}

	var client *models.Client
	if req.ClientID != nil {
		var cl models.Client
		if err := h.db.Where("id = ? AND user_id = ?", *req.ClientID, userID).First(&cl).Error; err != nil {
			httperr.BadRequest(c, "client_not_found", "Client not found.")
			return
		}
		client = &cl
	}

	inbound := models.Message{
		UserID:     userID,
		ClientID:   req.ClientID,
		Direction:  "inbound",
		Category:   category,
		Body:       req.Body,
		ExternalID: req.ExternalID,
	}

	if err := h.db.Create(&inbound).Error; err != nil {
		httperr.Internal(c, "failed_to_create_message", "Could not record message.")
		return
	}

	resp := InboundMessageResponse{Message: &inbound}

	tpl, err := h.getDefault.Execute(ctx, userID, category)
	if err == nil && tpl != nil {
		reply := h.autoReply(userID, client, tpl)
		if reply != nil {
			resp.Reply = reply
		}
	}

	c.JSON(http.StatusCreated, resp)
}

// autoReply renders the default template for the inbound category and stores
// the outbound message. A storage failure here drops the reply but never the
// inbound record.
func (h *MessageHandler) autoReply(
	userID uint,
	client *models.Client,
	tpl *models.AutoResponse,
) *models.Message {

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil
	}

	business := user.BusinessName
	if business == "" {
		business = user.Name
	}

	data := domain.RenderData{
		BookingLink:  "/book/" + user.Slug,
		BusinessName: business,
	}
	if client != nil {
		data.ClientName = client.Name

		// The date and time tokens refer to the client's next upcoming
		// booking. Without one they stay unrendered rather than blank.
		if next := h.nextBooking(user, client); next != nil {
			data.Date = next.Date
			data.Time = next.Time
		}
	}

	outbound := models.Message{
		UserID:         userID,
		Direction:      "outbound",
		Category:       tpl.Type,
		Body:           domain.Render(tpl.Content, data),
		AutoResponseID: &tpl.ID,
	}
	if client != nil {
		outbound.ClientID = &client.ID
	}

	if err := h.db.Create(&outbound).Error; err != nil {
		return nil
	}
	return &outbound
}

// nextBooking finds the client's earliest live booking from today on.
func (h *MessageHandler) nextBooking(user models.User, client *models.Client) *models.Booking {
	today := timezone.NowIn(user.Timezone).Format("2006-01-02")

	var next models.Booking
	err := h.db.
		Where("professional_id = ? AND client_id = ? AND date >= ? AND status IN ?",
			user.ID, client.ID, today,
			[]string{"pending", "confirmed", "rescheduled"}).
		Order("date ASC, time ASC").
		First(&next).Error
	if err != nil {
		return nil
	}
	return &next
}
