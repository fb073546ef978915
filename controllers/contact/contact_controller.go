package contactController

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/validators"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
)

type Controller struct {
	messages *mongo.Collection
	mailer   *gomail.Dialer
	from     string
	inbox    string
}

// New wires the contact endpoint. The email notification is optional:
// without SMTP configuration messages are only persisted.
func New(client *mongo.Client) *Controller {
	ctl := &Controller{
		messages: configs.GetCollection(client, "contact_messages"),
		from:     configs.EnvSMTPFrom(),
		inbox:    configs.EnvContactEmail(),
	}

	host := configs.EnvSMTPHost()
	user := configs.EnvSMTPUser()
	pass := configs.EnvSMTPPass()
	if host != "" && user != "" && pass != "" {
		port, err := strconv.Atoi(configs.EnvSMTPPort())
		if err != nil {
			port = 587
		}
		ctl.mailer = gomail.NewDialer(host, port, user, pass)
	}

	return ctl
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (ctl *Controller) notify(msg models.ContactMessage) {
	if ctl.mailer == nil || ctl.inbox == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", ctl.from)
	m.SetHeader("To", ctl.inbox)
	m.SetHeader("Subject", "New contact message from "+msg.Name)
	m.SetHeader("Reply-To", msg.Email)
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))

	if err := ctl.mailer.DialAndSend(m); err != nil {
		// Notification failure never fails the request.
		log.Printf("contact notification email failed: %v", err)
	}
}

// SubmitContact stores a contact form message and notifies the shop
// inbox when SMTP is configured.
func (ctl *Controller) SubmitContact(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody ContactRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	reqBody.Name = strings.TrimSpace(reqBody.Name)
	reqBody.Email = strings.TrimSpace(reqBody.Email)
	reqBody.Message = strings.TrimSpace(reqBody.Message)

	if reqBody.Name == "" || reqBody.Email == "" || reqBody.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name, email and message are required",
		})
	}
	if msg := validators.Check(reqBody); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
		})
	}

	message := models.ContactMessage{
		Id:        primitive.NewObjectID(),
		Name:      reqBody.Name,
		Email:     reqBody.Email,
		Message:   reqBody.Message,
		CreatedAt: time.Now(),
	}

	if _, err := ctl.messages.InsertOne(ctx, message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving message",
		})
	}

	go ctl.notify(message)

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Thank you for your message. We will get back to you soon.",
		Result:  &fiber.Map{"id": message.Id.Hex()},
	})
}
