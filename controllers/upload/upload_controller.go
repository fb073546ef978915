package uploadController

import (
	"os"
	"path/filepath"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/utils"
	"github.com/gofiber/fiber/v2"
)

const UploadsDir = "uploads"

type Controller struct {
	baseURL string
}

func New() *Controller {
	// Best effort: on a read-only filesystem uploads fail per-request
	// while the rest of the API keeps serving.
	_ = os.MkdirAll(UploadsDir, os.ModePerm)
	return &Controller{baseURL: configs.EnvBaseURL()}
}

// UploadImage stores a multipart image under ./uploads and returns its
// public URL. 5 MiB cap, image content types only.
func (ctl *Controller) UploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No file uploaded",
		})
	}

	filename, err := utils.ValidateImageUpload(header)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := c.SaveFile(header, filepath.Join(UploadsDir, filename)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving file",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Image uploaded",
		Result:  &fiber.Map{"url": ctl.baseURL + "/uploads/" + filename},
	})
}
