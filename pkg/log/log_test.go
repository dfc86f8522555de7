package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	SetupTestLogger()
	logrus.SetOutput(buf)
	t.Cleanup(func() {
		logrus.SetOutput(original)
	})
	return buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltraCamposIrrelevantes(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"filter_products": 2,
		"user_agent":      "curl",
		"horizon":         30,
	}).Info("teste")

	out := buf.String()
	assert.Contains(t, out, "filter_products=2")
	assert.Contains(t, out, "horizon=30")
	assert.NotContains(t, out, "user_agent")
}

func TestWithFields_ProducaoMantemTodosOsCampos(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("user_agent", "curl").Info("teste")

	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("com contexto")

	assert.Contains(t, buf.String(), id)
}
