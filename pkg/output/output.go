package output

import "github.com/ericogr/ads1115-sampler/pkg/ads1115"

type Output interface {
	Publish(ads1115.Snapshot) error
	Close() error
}

// constructors live in the subpackages
