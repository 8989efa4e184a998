package entity

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

// LinkContent is the per-type payload of a link. Each variant carries only
// the fields its type renders.
type LinkContent interface {
	Type() LinkType
	Validate() error
}

const (
	maxWriteupLen   = 5000
	maxTitleLen     = 120
	maxInputsOnPage = 10
)

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// VotingContent promotes a single contestant
type VotingContent struct {
	ContestantName string `json:"contestantName"`
	Writeup        string `json:"writeup"`
	ImageURL       string `json:"imageUrl"`
	BannerURL      string `json:"bannerUrl,omitempty"`
}

func (c *VotingContent) Type() LinkType { return LinkTypeVoting }

func (c *VotingContent) Validate() error {
	verr := &errs.ValidationError{}
	requireText(verr, "contestantName", c.ContestantName, maxTitleLen)
	requireText(verr, "writeup", c.Writeup, maxWriteupLen)
	validateImages(verr, c.ImageURL, c.BannerURL)
	return verr.OrNil()
}

// GiveawayContent describes a giveaway campaign
type GiveawayContent struct {
	Title     string `json:"title"`
	Writeup   string `json:"writeup"`
	ImageURL  string `json:"imageUrl"`
	BannerURL string `json:"bannerUrl,omitempty"`
}

func (c *GiveawayContent) Type() LinkType { return LinkTypeGiveaway }

func (c *GiveawayContent) Validate() error {
	verr := &errs.ValidationError{}
	requireText(verr, "title", c.Title, maxTitleLen)
	requireText(verr, "writeup", c.Writeup, maxWriteupLen)
	validateImages(verr, c.ImageURL, c.BannerURL)
	return verr.OrNil()
}

// CustomContent is a free-form page
type CustomContent struct {
	Title     string `json:"title"`
	Writeup   string `json:"writeup"`
	ImageURL  string `json:"imageUrl"`
	BannerURL string `json:"bannerUrl,omitempty"`
}

func (c *CustomContent) Type() LinkType { return LinkTypeCustom }

func (c *CustomContent) Validate() error {
	verr := &errs.ValidationError{}
	requireText(verr, "title", c.Title, maxTitleLen)
	requireText(verr, "writeup", c.Writeup, maxWriteupLen)
	validateImages(verr, c.ImageURL, c.BannerURL)
	return verr.OrNil()
}

// InputKind is the HTML input flavour of a form field
type InputKind string

const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputNumber   InputKind = "number"
	InputTel      InputKind = "tel"
	InputDate     InputKind = "date"
	InputTextArea InputKind = "textarea"
)

var validInputKinds = map[InputKind]bool{
	InputText: true, InputEmail: true, InputNumber: true,
	InputTel: true, InputDate: true, InputTextArea: true,
}

// FormInput is one field on a scratch-built page
type FormInput struct {
	Label       string    `json:"label"`
	Kind        InputKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
}

// FormPage is one step of a scratch-built multi-page form
type FormPage struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle,omitempty"`
	ButtonText string      `json:"buttonText"`
	Inputs     []FormInput `json:"inputs"`
}

// SuccessPage is shown after the last form page
type SuccessPage struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// ScratchContent is a user-built multi-page form
type ScratchContent struct {
	Pages   []FormPage  `json:"pages"`
	Success SuccessPage `json:"success"`
}

func (c *ScratchContent) Type() LinkType { return LinkTypeScratch }

// ApplyDefaults fills optional presentation fields left blank
func (c *ScratchContent) ApplyDefaults() {
	for i := range c.Pages {
		if strings.TrimSpace(c.Pages[i].ButtonText) == "" {
			c.Pages[i].ButtonText = "Continue"
		}
		for j := range c.Pages[i].Inputs {
			if c.Pages[i].Inputs[j].Kind == "" {
				c.Pages[i].Inputs[j].Kind = InputText
			}
		}
	}
	if strings.TrimSpace(c.Success.Title) == "" {
		c.Success.Title = "Thank you"
	}
	if strings.TrimSpace(c.Success.Message) == "" {
		c.Success.Message = "Your response has been recorded."
	}
}

func (c *ScratchContent) Validate() error {
	verr := &errs.ValidationError{}
	if n := len(c.Pages); n < MinScratchPages || n > MaxScratchPages {
		verr.Add("pages", fmt.Sprintf("must have between %d and %d pages", MinScratchPages, MaxScratchPages))
	}
	for i, p := range c.Pages {
		prefix := fmt.Sprintf("pages[%d]", i)
		requireText(verr, prefix+".title", p.Title, maxTitleLen)
		requireText(verr, prefix+".buttonText", p.ButtonText, maxTitleLen)
		if len(p.Inputs) == 0 {
			verr.Add(prefix+".inputs", "at least one input is required")
		} else if len(p.Inputs) > maxInputsOnPage {
			verr.Add(prefix+".inputs", fmt.Sprintf("at most %d inputs per page", maxInputsOnPage))
		}
		for j, in := range p.Inputs {
			field := fmt.Sprintf("%s.inputs[%d]", prefix, j)
			requireText(verr, field+".label", in.Label, maxTitleLen)
			if !validInputKinds[in.Kind] {
				verr.Add(field+".kind", fmt.Sprintf("unsupported input kind %q", in.Kind))
			}
		}
	}
	requireText(verr, "success.title", c.Success.Title, maxTitleLen)
	requireText(verr, "success.message", c.Success.Message, maxWriteupLen)
	if c.Success.RedirectURL != "" && !isHTTPURL(c.Success.RedirectURL) {
		verr.Add("success.redirectUrl", "must be an http(s) URL")
	}
	return verr.OrNil()
}

// NewContent returns an empty content value for a link type
func NewContent(t LinkType) (LinkContent, error) {
	switch t {
	case LinkTypeVoting:
		return &VotingContent{}, nil
	case LinkTypeGiveaway:
		return &GiveawayContent{}, nil
	case LinkTypeCustom:
		return &CustomContent{}, nil
	case LinkTypeScratch:
		return &ScratchContent{}, nil
	}
	return nil, errs.NewValidationError("type", fmt.Sprintf("unknown link type %q", t))
}

// DecodeContent parses raw JSON into the variant selected by t
func DecodeContent(t LinkType, raw []byte) (LinkContent, error) {
	content, err := NewContent(t)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errs.NewValidationError("content", "is required")
	}
	if err := json.Unmarshal(raw, content); err != nil {
		return nil, errs.NewValidationError("content", fmt.Sprintf("malformed %s content: %v", t, err))
	}
	if sc, ok := content.(*ScratchContent); ok {
		sc.ApplyDefaults()
	}
	return content, nil
}

// EncodeContent serialises content for storage
func EncodeContent(content LinkContent) ([]byte, error) {
	return json.Marshal(content)
}

func requireText(verr *errs.ValidationError, field, value string, maxLen int) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		verr.Add(field, "is required")
	case len(value) > maxLen:
		verr.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
}

func validateImages(verr *errs.ValidationError, image, banner string) {
	if strings.TrimSpace(image) == "" {
		verr.Add("imageUrl", "is required")
	} else if !IsImageURL(image) {
		verr.Add("imageUrl", "must be an http(s) URL ending in .jpg, .jpeg or .png")
	}
	if banner != "" && !IsImageURL(banner) {
		verr.Add("bannerUrl", "must be an http(s) URL ending in .jpg, .jpeg or .png")
	}
}

// IsImageURL accepts absolute http(s) URLs whose path ends in a jpg or png extension
func IsImageURL(raw string) bool {
	if !isHTTPURL(raw) {
		return false
	}
	u, _ := url.Parse(strings.TrimSpace(raw))
	return allowedImageExt[strings.ToLower(path.Ext(u.Path))]
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
