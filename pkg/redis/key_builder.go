package redis

import "fmt"

const (
	keyProfileName = "recruit:profile:%d:name"
	keyTeamName    = "recruit:team:%d:name"
)

// KeyBuilder prefixes keys with the environment so that staging and prod can share an instance.
type KeyBuilder struct {
	prefix string
}

func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{prefix: prefix}
}

func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

func (kb *KeyBuilder) KeyProfileName(profileId int64) string {
	return kb.BuildKey(fmt.Sprintf(keyProfileName, profileId))
}

func (kb *KeyBuilder) KeyTeamName(teamId int64) string {
	return kb.BuildKey(fmt.Sprintf(keyTeamName, teamId))
}
