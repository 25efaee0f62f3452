package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey stores the authenticated token subject (the client ID).
const subjectKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// GetSubjectFromContext retrieves the authenticated subject from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subject, ok := c.Request.Context().Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
