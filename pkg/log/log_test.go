package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentFieldFilter(t *testing.T) {
	var out bytes.Buffer
	Setup("debug", "local")
	logrus.SetOutput(&out)
	defer logrus.SetOutput(os.Stderr)

	L.WithFields(Fields{"route": "/manager", "noise": "dropped"}).Info("request")

	assert.Contains(t, out.String(), "route=/manager")
	assert.NotContains(t, out.String(), "noise")
}
