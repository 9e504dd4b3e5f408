package hcl

// botFile is the top-level structure of a configuration file. Every field is
// optional so that settings can be split across files.
type botFile struct {
	Environment   *string          `hcl:"environment,optional"`
	Token         *string          `hcl:"token,optional"`
	ApplicationID *string          `hcl:"application_id,optional"`
	API           *apiBlock        `hcl:"api,block"`
	GuildCache    *guildCacheBlock `hcl:"guild_cache,block"`
}

type apiBlock struct {
	BaseURL *string `hcl:"base_url,optional"`
	Timeout *string `hcl:"timeout,optional"`
}

type guildCacheBlock struct {
	Size *int    `hcl:"size,optional"`
	TTL  *string `hcl:"ttl,optional"`
}
