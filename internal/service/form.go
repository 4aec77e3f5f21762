package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
)

// MaxImageBytes caps uploaded image files.
const MaxImageBytes = 5 * 1024 * 1024

// Field-level messages shown next to the form inputs.
const (
	MsgNameRequired        = "Name is required"
	MsgTagRequired         = "Tag is required"
	MsgDescriptionRequired = "Description is required"
	MsgImageRequired       = "Image is required (upload a file or provide URL)"
	MsgTimeRequired        = "Time is required"
	MsgServesRequired      = "Serves is required"
	MsgIngredientsRequired = "At least one ingredient is required"
	MsgStepsRequired       = "At least one step is required"
	MsgImageNotAnImage     = "Please select an image file"
	MsgImageTooLarge       = "Image size must be less than 5MB"
	MsgImageReadFailed     = "Failed to read image file"
	MsgImageLoadFailed     = "Failed to load image. Please check the URL or try uploading a file."
)

// ImageSource says how the form's image was provided.
type ImageSource string

const (
	ImageSourceURL    ImageSource = "url"
	ImageSourceUpload ImageSource = "upload"
)

// RecipeForm is what the authoring form submits. ID is set when editing.
type RecipeForm struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Tag         string      `json:"tag"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Mood        string      `json:"mood"`
	Time        string      `json:"time"`
	Serves      string      `json:"serves"`
	Ingredients []string    `json:"ingredients"`
	Steps       []string    `json:"steps"`
	ImageSource ImageSource `json:"image_source,omitempty"`
}

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return "invalid recipe: " + strings.Join(parts, "; ")
}

// normalizedForm is the trimmed form with blank list entries dropped.
type normalizedForm struct {
	Name        string `validate:"required"`
	Tag         string `validate:"required"`
	Description string `validate:"required"`
	Image       string `validate:"required,imagesrc"`
	Mood        string
	Time        string   `validate:"required"`
	Serves      string   `validate:"required"`
	Ingredients []string `validate:"min=1"`
	Steps       []string `validate:"min=1"`
}

// messages is keyed by struct field, then validator tag.
var messages = map[string]map[string]string{
	"Name":        {"required": MsgNameRequired},
	"Tag":         {"required": MsgTagRequired},
	"Description": {"required": MsgDescriptionRequired},
	"Image":       {"required": MsgImageRequired, "imagesrc": MsgImageLoadFailed},
	"Time":        {"required": MsgTimeRequired},
	"Serves":      {"required": MsgServesRequired},
	"Ingredients": {"min": MsgIngredientsRequired},
	"Steps":       {"min": MsgStepsRequired},
}

// FormValidator checks authoring form submissions.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New()
	if err := v.RegisterValidation("imagesrc", func(fl validator.FieldLevel) bool {
		return isImageSource(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering imagesrc validation: %v", err))
	}
	return &FormValidator{validate: v}
}

// Validate returns the draft to hand to the repository, or the field errors
// that blocked the submission.
func (v *FormValidator) Validate(form RecipeForm) (model.RecipeDraft, error) {
	n := normalizedForm{
		Name:        strings.TrimSpace(form.Name),
		Tag:         strings.TrimSpace(form.Tag),
		Description: strings.TrimSpace(form.Description),
		Image:       strings.TrimSpace(form.Image),
		Mood:        strings.TrimSpace(form.Mood),
		Time:        strings.TrimSpace(form.Time),
		Serves:      strings.TrimSpace(form.Serves),
		Ingredients: nonBlank(form.Ingredients),
		Steps:       nonBlank(form.Steps),
	}

	out := FieldErrors{}
	if err := v.validate.Struct(n); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return model.RecipeDraft{}, err
		}
		for _, fe := range verrs {
			msg, ok := messages[fe.Field()][fe.Tag()]
			if !ok {
				msg = fe.Error()
			}
			out[strings.ToLower(fe.Field())] = msg
		}
	}
	// inline images get the same checks as uploads
	if _, failed := out["image"]; !failed && strings.HasPrefix(n.Image, "data:") {
		if msg := inlineImageError(n.Image); msg != "" {
			out["image"] = msg
		}
	}
	if len(out) > 0 {
		return model.RecipeDraft{}, out
	}

	return model.RecipeDraft{
		Name:        n.Name,
		Tag:         n.Tag,
		Description: n.Description,
		Image:       n.Image,
		Mood:        n.Mood,
		Time:        n.Time,
		Serves:      n.Serves,
		Ingredients: n.Ingredients,
		Steps:       n.Steps,
	}, nil
}

// Prefill builds the form for editing an existing recipe. Empty lists get a
// single blank row so the form always shows one input.
func Prefill(recipe model.Recipe) RecipeForm {
	form := RecipeForm{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Tag:         recipe.Tag,
		Description: recipe.Description,
		Image:       recipe.Image,
		Mood:        recipe.Mood,
		Time:        recipe.Time,
		Serves:      recipe.Serves,
		Ingredients: append([]string(nil), recipe.Ingredients...),
		Steps:       append([]string(nil), recipe.Steps...),
		ImageSource: ImageSourceURL,
	}
	if len(form.Ingredients) == 0 {
		form.Ingredients = []string{""}
	}
	if len(form.Steps) == 0 {
		form.Steps = []string{""}
	}
	if strings.HasPrefix(recipe.Image, "data:") {
		form.ImageSource = ImageSourceUpload
	}
	return form
}

// EncodeImageUpload turns an uploaded file into a data URL. declaredType and
// size come from the upload's headers; the content is sniffed as well.
func EncodeImageUpload(declaredType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(declaredType, "image/") {
		return "", FieldErrors{"image": MsgImageNotAnImage}
	}
	if size > MaxImageBytes {
		return "", FieldErrors{"image": MsgImageTooLarge}
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", FieldErrors{"image": MsgImageReadFailed}
	}
	if len(data) > MaxImageBytes {
		return "", FieldErrors{"image": MsgImageTooLarge}
	}

	mtype, ok := sniffImage(data)
	if !ok {
		return "", FieldErrors{"image": MsgImageNotAnImage}
	}
	return "data:" + mtype + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// inlineImageError checks a data URL submitted in the image field and returns
// the field message, or "" if the image is acceptable.
func inlineImageError(dataURL string) string {
	_, payload, _ := strings.Cut(dataURL, ",")
	// 4 base64 characters per 3 bytes; reject before decoding anything huge
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+2 {
		return MsgImageTooLarge
	}
	_, data, err := decodeDataURL(dataURL)
	if err != nil {
		return MsgImageNotAnImage
	}
	if len(data) > MaxImageBytes {
		return MsgImageTooLarge
	}
	if _, ok := sniffImage(data); !ok {
		return MsgImageNotAnImage
	}
	return ""
}

// sniffImage reports the detected media type of data if it is an image.
func sniffImage(data []byte) (string, bool) {
	mtype := mimetype.Detect(data).String()
	return mtype, strings.HasPrefix(mtype, "image/")
}

func isImageSource(s string) bool {
	if strings.HasPrefix(s, "data:") {
		return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ",")
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func nonBlank(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
