package uid

import (
	"hash/fnv"
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 IDs safe for use as primary keys.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake generator.
//
// The node number is taken from the SNOWFLAKE_NODE environment variable when
// set, otherwise it is derived from the hostname so that replicas on
// different machines get distinct nodes.
func NewSnowflake() (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeNumber())
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

func nodeNumber() int64 {
	if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 && n < 1024 {
			return n
		}
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		return 0
	}

	h := fnv.New32a()
	//nolint:errcheck // fnv never fails
	h.Write([]byte(host))
	return int64(h.Sum32() % 1024)
}
