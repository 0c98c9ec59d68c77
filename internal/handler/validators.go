package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"society-admin-svc/internal/validation"
)

var registerOnce sync.Once

// RegisterValidators adds the panel's custom binding tags to gin's validator
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = validation.Register(v)
		}
	})
}
