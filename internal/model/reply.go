package model

import "encoding/json"

// Chat response type tags used on the wire.
const (
	ReplyTypeText        = "text"
	ReplyTypeCartUpdate  = "cart-update"
	ReplyTypeImage       = "image"
	ReplyTypeGallery     = "gallery"
	ReplyTypeProductCard = "product-card"
	ReplyTypeOptions     = "options"
)

// ChatResponse is the wire shape of POST /chat responses: a text plus an
// optional type tag and type-dependent payload fields.
type ChatResponse struct {
	Text     string          `json:"text"`
	Type     string          `json:"type,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Image    string          `json:"image,omitempty"`
	Images   []string        `json:"images,omitempty"`
	Products []Product       `json:"products,omitempty"`
}

// Reply is the decoded, tagged form of a chat response. Consumers switch on
// the concrete type; every variant carries the reply text.
type Reply interface {
	ReplyText() string
	isReply()
}

// TextReply is a plain text reply.
type TextReply struct {
	Text string
}

// CartUpdateReply replaces the session cart with the carried items.
type CartUpdateReply struct {
	Text  string
	Items []CartItem
}

// ImageReply carries a single image URL.
type ImageReply struct {
	Text  string
	Image string
}

// GalleryReply carries a list of image URLs.
type GalleryReply struct {
	Text   string
	Images []string
}

// ProductCardReply carries embedded products for card rendering.
type ProductCardReply struct {
	Text     string
	Products []Product
}

// OptionsReply carries quick-reply choices for the user.
type OptionsReply struct {
	Text    string
	Options []string
}

func (r TextReply) ReplyText() string        { return r.Text }
func (r CartUpdateReply) ReplyText() string  { return r.Text }
func (r ImageReply) ReplyText() string       { return r.Text }
func (r GalleryReply) ReplyText() string     { return r.Text }
func (r ProductCardReply) ReplyText() string { return r.Text }
func (r OptionsReply) ReplyText() string     { return r.Text }

func (TextReply) isReply()        {}
func (CartUpdateReply) isReply()  {}
func (ImageReply) isReply()       {}
func (GalleryReply) isReply()     {}
func (ProductCardReply) isReply() {}
func (OptionsReply) isReply()     {}

// Decode converts the wire response into its tagged variant. Payload fields
// may arrive either in the dedicated field or inside data; both are
// accepted. Unknown or malformed payloads degrade to a TextReply rather
// than failing the whole response.
func (r ChatResponse) Decode() Reply {
	switch r.Type {
	case ReplyTypeCartUpdate:
		var items []CartItem
		if len(r.Data) > 0 {
			if err := json.Unmarshal(r.Data, &items); err != nil {
				return TextReply{Text: r.Text}
			}
		}
		return CartUpdateReply{Text: r.Text, Items: items}

	case ReplyTypeImage:
		image := r.Image
		if image == "" && len(r.Data) > 0 {
			if err := json.Unmarshal(r.Data, &image); err != nil {
				return TextReply{Text: r.Text}
			}
		}
		return ImageReply{Text: r.Text, Image: image}

	case ReplyTypeGallery:
		images := r.Images
		if len(images) == 0 && len(r.Data) > 0 {
			if err := json.Unmarshal(r.Data, &images); err != nil {
				return TextReply{Text: r.Text}
			}
		}
		return GalleryReply{Text: r.Text, Images: images}

	case ReplyTypeProductCard:
		products := r.Products
		if len(products) == 0 && len(r.Data) > 0 {
			if err := json.Unmarshal(r.Data, &products); err != nil {
				return TextReply{Text: r.Text}
			}
		}
		return ProductCardReply{Text: r.Text, Products: products}

	case ReplyTypeOptions:
		var options []string
		if len(r.Data) > 0 {
			if err := json.Unmarshal(r.Data, &options); err != nil {
				return TextReply{Text: r.Text}
			}
		}
		return OptionsReply{Text: r.Text, Options: options}

	default:
		// Includes ReplyTypeText, an empty tag and any unknown tag.
		return TextReply{Text: r.Text}
	}
}

// NewOptionsResponse builds an options-tagged wire response.
func NewOptionsResponse(text string, options []string) ChatResponse {
	data, _ := json.Marshal(options)
	return ChatResponse{Text: text, Type: ReplyTypeOptions, Data: data}
}

// NewCartUpdateResponse builds a cart-update-tagged wire response.
func NewCartUpdateResponse(text string, items []CartItem) ChatResponse {
	data, _ := json.Marshal(items)
	return ChatResponse{Text: text, Type: ReplyTypeCartUpdate, Data: data}
}

// NewProductCardResponse builds a product-card-tagged wire response.
func NewProductCardResponse(text string, products []Product) ChatResponse {
	return ChatResponse{Text: text, Type: ReplyTypeProductCard, Products: products}
}
