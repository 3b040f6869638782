package profile

// Option applies a configuration option to the KeywordResolver.
type Option func(*KeywordResolver)

// WithSkillKeywords replaces the built-in skill dictionary.
func WithSkillKeywords(skills []string) Option {
	return func(r *KeywordResolver) {
		if len(skills) > 0 {
			r.skills = skills
		}
	}
}

// WithRoleInterests replaces the built-in role-to-interest mapping.
func WithRoleInterests(roles map[string][]string) Option {
	return func(r *KeywordResolver) {
		if len(roles) > 0 {
			r.roleInterests = roles
		}
	}
}
