package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"medequip-support-be/internal/dto"
	"medequip-support-be/internal/pkg/serverutils"
	"medequip-support-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (cc *chatController) RegisterRoutes(r fiber.Router) {
	group := r.Group("/chat/v1")
	group.Post("/sessions", cc.createSession)
	group.Delete("/sessions/:sessionId", cc.deleteSession)
	group.Get("/sessions/:sessionId/history", cc.getHistory)
	group.Post("/messages", cc.sendChat)
	group.Post("/auth", cc.authenticate)
}

func (cc *chatController) createSession(ctx *fiber.Ctx) error {
	response, err := cc.chatService.CreateSession(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("session created", response))
}

func (cc *chatController) sendChat(ctx *fiber.Ctx) error {
	var request dto.SendChatRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	response, err := cc.chatService.SendChat(ctx.UserContext(), &request)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("message handled", response))
}

func (cc *chatController) authenticate(ctx *fiber.Ctx) error {
	var request dto.AuthRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	response, err := cc.chatService.Authenticate(ctx.UserContext(), &request)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("authentication processed", response))
}

func (cc *chatController) getHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	response, err := cc.chatService.GetHistory(ctx.UserContext(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("history fetched", response))
}

func (cc *chatController) deleteSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	if err := cc.chatService.DeleteSession(ctx.UserContext(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse[any]("session deleted", nil))
}

func mapServiceError(err error) error {
	if errors.Is(err, service.ErrSessionNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
