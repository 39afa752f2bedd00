package feedbackHandler

import (
	"HotelGolang/internal/api/feedback"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"HotelGolang/pkg/handlerUtil"
	jwtPkg "HotelGolang/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *FeedbackHandler) HandleCreateFeedback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "You must be logged in to send feedback")
	}

	var req feedback.CreateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	fb, err := h.feedbackService.CreateFeedback(c, userData, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_feedback")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeFeedbackResponse(fb))
	}
}

func (h *FeedbackHandler) HandleGetFeedback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	feedbacks, err := h.feedbackService.GetFeedback(c, userData)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_feedback")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeFeedbackResponses(feedbacks))
	}
}

func makeFeedbackResponse(fb entity.Feedback) feedback.FeedbackResponse {
	return feedback.FeedbackResponse{
		ID:        fb.ID,
		UserID:    fb.UserID,
		Message:   fb.Message,
		CreatedAt: fb.CreatedAt,
	}
}

func makeFeedbackResponses(feedbacks []entity.Feedback) []feedback.FeedbackResponse {
	res := make([]feedback.FeedbackResponse, 0, len(feedbacks))
	for _, fb := range feedbacks {
		res = append(res, makeFeedbackResponse(fb))
	}
	return res
}
