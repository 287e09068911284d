package tier

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// The baseline feature set ships as data rather than code so the free-tier
// entitlements can be reviewed and diffed without reading the resolver.
//
//go:embed defaults.yaml
var defaultFeaturesYAML []byte

var loadDefaults = sync.OnceValue(func() Features {
	var f Features
	if err := yaml.Unmarshal(defaultFeaturesYAML, &f); err != nil {
		panic(fmt.Sprintf("tier: invalid embedded defaults: %v", err))
	}
	return f
})

// DefaultFeatures returns the baseline feature set every workspace starts
// from: all capability flags off except basic search, one team seat, one
// email account, no campaigns or templates. The returned value is a copy;
// callers may modify it freely.
func DefaultFeatures() Features {
	return loadDefaults()
}
