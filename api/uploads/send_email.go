package uploads

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"cocooriginal_server/lib"
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
)

// SendUploadEmail relays a customer's payment slip to the shop owner. The
// storefront posts either a multipart form with the slip attached or a
// JSON body carrying an image URL; the content type picks the branch.
func (urm *UploadRoutesManager) SendUploadEmail(w http.ResponseWriter, r *http.Request) {
	if urm.cfg.Email.ApiKey == "" || urm.cfg.Email.ShopOwner == "" {
		urm.logger.Error("Email credentials or shop owner address not configured")
		lib.WriteError(w, http.StatusInternalServerError, "Server configuration is missing")
		return
	}

	contentType := r.Header.Get("Content-Type")
	isMultipart := strings.Contains(contentType, "multipart/form-data")

	var (
		orderNumber string
		orderEmail  string
		fileName    string
		fileContent []byte
		uploadImage string
	)

	if isMultipart {
		if err := r.ParseMultipartForm(urm.cfg.Server.MaxUploadBytes); err != nil {
			urm.logger.Warn("Failed to parse multipart form", gecho.Field("error", err))
			lib.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		orderNumber = r.FormValue("orderNumber")
		orderEmail = firstNonEmpty(r.FormValue("orderEmail"), r.FormValue("email"))

		if file, header, err := r.FormFile("file"); err == nil {
			defer file.Close()
			content, readErr := io.ReadAll(file)
			if readErr != nil {
				urm.logger.Error("Failed to read uploaded file", gecho.Field("error", readErr))
				lib.WriteError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			fileContent = content
			fileName = header.Filename
			if fileName == "" {
				fileName = "attachment"
			}
		}
	} else {
		body, err := lib.ExtractAndValidateBody[structs.UploadBody](r)
		if err != nil {
			var ve *lib.ValidationError
			if errors.As(err, &ve) {
				lib.WriteError(w, http.StatusBadRequest, ve)
				return
			}
			urm.logger.Warn("Failed to parse upload body", gecho.Field("error", err))
			lib.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		orderNumber = body.OrderNumber
		orderEmail = firstNonEmpty(body.OrderEmail, body.Email)
		uploadImage = body.UploadImage
	}

	if orderNumber == "" {
		lib.WriteError(w, http.StatusBadRequest, "orderNumber is required")
		return
	}
	if orderEmail == "" {
		lib.WriteError(w, http.StatusBadRequest, "orderEmail is required")
		return
	}
	if isMultipart && len(fileContent) == 0 {
		lib.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}

	// A malformed sender means a broken deployment, not bad user input.
	fromAddress := lib.StripQuotes(urm.cfg.Email.From)
	if !lib.IsValidSender(fromAddress) {
		urm.logger.Error("Configured sender address is not a valid email", gecho.Field("from", fromAddress))
		lib.WriteError(w, http.StatusInternalServerError, "Invalid RESEND_FROM format")
		return
	}

	// Only a well-formed customer address becomes the reply-to; the raw
	// value still goes into the notification body for human review.
	customerEmail := lib.StripQuotes(orderEmail)
	replyTo := ""
	if lib.IsValidEmail(customerEmail) {
		replyTo = customerEmail
	}

	notification := &structs.UploadNotification{
		Reference:     lib.NewUploadReference(),
		OrderNumber:   orderNumber,
		CustomerEmail: customerEmail,
		ReplyTo:       replyTo,
		ImageURL:      uploadImage,
		FileName:      fileName,
		FileContent:   fileContent,
	}

	urm.logger.Info("Relaying payment slip upload",
		gecho.Field("reference", notification.Reference),
		gecho.Field("order_number", orderNumber),
		gecho.Field("has_attachment", len(fileContent) > 0),
	)

	receipt, err := urm.notifier.SendUploadNotification(r.Context(), notification)
	if err != nil {
		urm.logger.Error("Upload notification delivery failed",
			gecho.Field("error", err),
			gecho.Field("reference", notification.Reference),
		)
		lib.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	lib.WriteData(w, http.StatusOK, receipt)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
