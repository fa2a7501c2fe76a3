package autowatermark

import (
	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Request is one input/output pair and the watermark to put on it.
type Request struct {
	InputPath  string `validate:"required,pdfpath,file"`
	OutputPath string `validate:"required,pdfpath,nefield=InputPath"`
	Source     Source `validate:"required"`
}

var fieldNames = map[string]string{
	"InputPath":  "Input file",
	"OutputPath": "Output file",
	"Source":     "Watermark source",
	"Text":       "Watermark text",
	"Path":       "Watermark template",
}

// Resolver checks a Request before anything is written.
type Resolver struct {
	validate *validator.Validate
	pdfConf  *model.Configuration
}

func NewResolver(pdfConf *model.Configuration) (*Resolver, error) {
	v := validator.New()
	if err := util.RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	return &Resolver{validate: v, pdfConf: pdfConf}, nil
}

// ValidateStyle checks the text watermark style.
func (r *Resolver) ValidateStyle(style Style) error {
	if err := r.validate.Struct(style); err != nil {
		return validationErrorf("watermark style", "%s", util.GenerateErrorMessagesAsString(err, nil))
	}
	return nil
}

// Resolve validates req and returns the page count of the input pdf.
// The source struct held by req.Source is validated as a nested struct.
func (r *Resolver) Resolve(req Request) (int, error) {
	if err := r.validate.Struct(req); err != nil {
		return 0, validationErrorf("request", "%s", util.GenerateErrorMessagesAsString(err, fieldNames))
	}

	// nefield only compares the strings
	if util.IsSameFile(req.InputPath, req.OutputPath) {
		return 0, validationErrorf("request", "Input/Output files can't be the same")
	}

	if err := api.ValidateFile(req.InputPath, r.pdfConf); err != nil {
		return 0, wrapValidation("input file "+req.InputPath+" is not a readable pdf", wrapLibrary("validate", err))
	}

	pageCount, err := api.PageCountFile(req.InputPath)
	if err != nil {
		return 0, wrapIO("read", req.InputPath, err)
	}

	return pageCount, nil
}
