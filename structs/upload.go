package structs

// UploadBody is the JSON shape the storefront posts when the customer
// supplies an image URL instead of attaching a file.
type UploadBody struct {
	OrderNumber string `json:"orderNumber"`
	OrderEmail  string `json:"orderEmail"`
	Email       string `json:"email"` // Shopify snippet sends "email"
	UploadImage string `json:"uploadImage" validate:"omitempty,url"`
}

// UploadNotification carries everything the email service needs to relay
// one payment slip to the shop owner.
type UploadNotification struct {
	Reference     string
	OrderNumber   string
	CustomerEmail string // raw customer input, quote-stripped
	ReplyTo       string // set only when CustomerEmail passed validation
	ImageURL      string
	FileName      string
	FileContent   []byte
}

// UploadReceipt is the success payload returned to the storefront.
type UploadReceipt struct {
	Id        string `json:"id"`
	Reference string `json:"reference"`
}
