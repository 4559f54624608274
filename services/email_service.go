package services

import (
	"context"
	"fmt"
	"html"
	"sync"
	"time"

	"cocooriginal_server/lib"
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

// SendUploadNotification renders the payment slip card and relays it to
// the shop owner. The reply-to header is only set when the customer
// address passed validation; the raw address still lands in the body so
// the owner can spot typos.
func (es *EmailService) SendUploadNotification(ctx context.Context, n *structs.UploadNotification) (*structs.UploadReceipt, error) {
	params := &resend.SendEmailRequest{
		From:    lib.StripQuotes(es.cfg.Email.From),
		To:      []string{es.cfg.Email.ShopOwner},
		Subject: fmt.Sprintf("Order %s upload from customer", n.OrderNumber),
		Html:    renderUploadNotification(n),
	}
	if n.ReplyTo != "" {
		params.ReplyTo = n.ReplyTo
	}
	if len(n.FileContent) > 0 {
		params.Attachments = []*resend.Attachment{
			{
				Filename: n.FileName,
				Content:  n.FileContent,
			},
		}
	}

	sent, err := es.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		es.logger.Error("Failed to send upload notification",
			gecho.Field("error", err),
			gecho.Field("reference", n.Reference),
		)
		return nil, err
	}

	es.logger.Info("Upload notification sent",
		gecho.Field("reference", n.Reference),
		gecho.Field("email_id", sent.Id),
	)
	return &structs.UploadReceipt{Id: sent.Id, Reference: n.Reference}, nil
}

// renderUploadNotification builds the fixed-layout notification card.
// Every customer-supplied value is HTML-escaped before interpolation.
func renderUploadNotification(n *structs.UploadNotification) string {
	orderNumber := html.EscapeString(n.OrderNumber)
	customerEmail := html.EscapeString(n.CustomerEmail)

	imageHtml := ""
	if n.ImageURL != "" {
		imageHtml = fmt.Sprintf(`<div style="margin-top:16px;padding:12px;border:1px solid #e5e7eb;border-radius:8px;background:#fafafa">
  <div style="font-weight:600;margin-bottom:8px">Uploaded Image</div>
  <img src="%s" alt="Uploaded image" style="max-width:100%%;height:auto;border-radius:6px;border:1px solid #e5e7eb"/>
</div>`, html.EscapeString(n.ImageURL))
	}

	year := time.Now().Year()

	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin:0;padding:0;background:#f6f7f9">
    <div style="max-width:640px;margin:0 auto;padding:24px">
      <div style="background:#ffffff;border:1px solid #e5e7eb;border-radius:12px;overflow:hidden">
        <div style="padding:20px 24px;border-bottom:1px solid #e5e7eb;background:#0f172a;color:#ffffff">
          <div style="font-size:18px;font-weight:700;letter-spacing:0.4px">Coco Original</div>
          <div style="font-size:12px;opacity:0.85">Payment Slip Upload</div>
        </div>
        <div style="padding:20px 24px;color:#0f172a">
          <div style="display:flex;gap:24px;flex-wrap:wrap">
            <div style="flex:1;min-width:240px">
              <div style="font-size:12px;color:#6b7280">Order Number</div>
              <div style="font-size:16px;font-weight:600">%s</div>
            </div>
            <div style="flex:1;min-width:240px">
              <div style="font-size:12px;color:#6b7280">Customer Email</div>
              <div style="font-size:16px;font-weight:600">%s</div>
            </div>
          </div>
          %s
        </div>
        <div style="padding:16px 24px;border-top:1px solid #e5e7eb;background:#f9fafb;color:#6b7280;text-align:center;font-size:12px">
          Copyright &copy; %d Coco Original. All rights reserved.<br/>
          Reference: %s
        </div>
      </div>
    </div>
  </body>
</html>`, orderNumber, customerEmail, imageHtml, year, html.EscapeString(n.Reference))
}
