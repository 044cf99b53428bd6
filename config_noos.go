//go:build alphablend_noos

package alphablend

const noOS = true

type runtimeConfig struct {
	noFastPath bool
	workers    int
}

var config = runtimeConfig{workers: 1}
