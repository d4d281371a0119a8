package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFields() Fields {
	return Fields{
		Title:   "A day",
		Date:    "2025-10-02",
		Summary: "It went fine.",
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validFields(), nil))
}

func TestValidate_TitleBoundaries(t *testing.T) {
	f := validFields()

	f.Title = strings.Repeat("a", 200)
	assert.Empty(t, Validate(f, nil))

	f.Title = strings.Repeat("a", 201)
	assert.Contains(t, Validate(f, nil), "title")

	f.Title = "   "
	assert.Contains(t, Validate(f, nil), "title")
}

func TestValidate_SummaryBoundaries(t *testing.T) {
	f := validFields()

	f.Summary = strings.Repeat("s", 5000)
	assert.Empty(t, Validate(f, nil))

	f.Summary = strings.Repeat("s", 5001)
	assert.Contains(t, Validate(f, nil), "summary")

	f.Summary = ""
	assert.Contains(t, Validate(f, nil), "summary")
}

func TestValidate_MoodBoundaries(t *testing.T) {
	f := validFields()

	f.Mood = strings.Repeat("m", 200)
	assert.Empty(t, Validate(f, nil))

	f.Mood = strings.Repeat("m", 201)
	assert.Contains(t, Validate(f, nil), "mood")
}

func TestValidate_Date(t *testing.T) {
	f := validFields()

	f.Date = ""
	assert.Equal(t, "Date is required.", Validate(f, nil)["date"])

	f.Date = "not-a-date"
	assert.Equal(t, "Invalid date.", Validate(f, nil)["date"])

	f.Date = "2025-10-02T15:04:05Z"
	assert.Empty(t, Validate(f, nil))
}

func TestValidate_ImgName(t *testing.T) {
	f := validFields()
	f.ImgName = strings.Repeat("u", 1001)
	assert.Contains(t, Validate(f, nil), "img_name")
}

func TestValidate_File(t *testing.T) {
	f := validFields()

	file := &File{Name: "a.txt", ContentType: "text/plain", Size: 10}
	assert.Equal(t, "Uploaded file must be an image.", Validate(f, file)["img"])

	file = &File{Name: "a.png", ContentType: "image/png", Size: MaxImageSize + 1}
	assert.Equal(t, "Image must be 5MB or smaller.", Validate(f, file)["img"])

	file = &File{Name: "a.png", ContentType: "image/png", Size: MaxImageSize}
	assert.Empty(t, Validate(f, file))
}

func TestValidate_FileErrorIndependentOfImgName(t *testing.T) {
	f := validFields()
	f.ImgName = strings.Repeat("u", 1001)
	file := &File{Name: "a.txt", ContentType: "text/plain", Size: 10}

	errs := Validate(f, file)
	assert.Contains(t, errs, "img_name")
	assert.Contains(t, errs, "img")
}
