package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bindPayload struct {
	Name  string `json:"nombre_completo"`
	Count int    `json:"cantidad"`
}

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		key         string
		body        string
		expected    bindPayload
		expectError bool
	}{
		{
			name:        "Nested Structure",
			key:         "empleado",
			body:        `{"empleado": {"nombre_completo": "Ana López", "cantidad": 30}}`,
			expected:    bindPayload{Name: "Ana López", Count: 30},
			expectError: false,
		},
		{
			name:        "Flat Structure",
			key:         "empleado",
			body:        `{"nombre_completo": "Bruno Díaz", "cantidad": 25}`,
			expected:    bindPayload{Name: "Bruno Díaz", Count: 25},
			expectError: false,
		},
		{
			name:        "Nested Structure with Missing Key Fallback",
			key:         "empleado",
			body:        `{"otro": "valor", "nombre_completo": "Carla Ruiz", "cantidad": 40}`,
			expected:    bindPayload{Name: "Carla Ruiz", Count: 40},
			expectError: false,
		},
		{
			name:        "Nested Structure with Different Key",
			key:         "producto",
			body:        `{"producto": {"nombre_completo": "Diego Paz", "cantidad": 35}}`,
			expected:    bindPayload{Name: "Diego Paz", Count: 35},
			expectError: false,
		},
		{
			name:        "Invalid JSON",
			key:         "empleado",
			body:        `{"nombre_completo": "Eva Soto", "cantidad": "invalid"}`, // cantidad is int
			expected:    bindPayload{},
			expectError: true,
		},
		{
			name:        "Nested but Invalid Content",
			key:         "empleado",
			body:        `{"empleado": {"nombre_completo": "Fabio Gil", "cantidad": "invalid"}}`,
			expected:    bindPayload{},
			expectError: true,
		},
		{
			name:        "Nested Key Present but Invalid Type",
			key:         "empleado",
			body:        `{"empleado": "some string"}`,
			expected:    bindPayload{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result bindPayload
			err := BindNestedOrFlat(c, tt.key, &result)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
