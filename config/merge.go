package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	// Merge version
	if override.Version != "" {
		result.Version = override.Version
	}

	if override.DefaultSet != "" {
		result.DefaultSet = override.DefaultSet
	}

	// Version rules are ordered, so an override replaces the whole list.
	if len(override.Versions) > 0 {
		result.Versions = append([]VersionRule(nil), override.Versions...)
	}

	result.Sources = mergeSources(base.Sources, override.Sources)

	// Merge extensions
	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			// If both base and override have the same extension key, merge them
			if baseValue, exists := merged[key]; exists {
				if baseMap, baseOk := baseValue.(map[string]interface{}); baseOk {
					if overrideMap, overrideOk := value.(map[string]interface{}); overrideOk {
						mergedMap := make(map[string]interface{})
						for k, v := range baseMap {
							mergedMap[k] = v
						}
						for k, v := range overrideMap {
							mergedMap[k] = v
						}
						merged[key] = mergedMap
						continue
					}
				}
			}
			// Otherwise just replace
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

// mergeSources keeps base order, replaces same-named sources in place and
// appends new ones.
func mergeSources(base, override []Source) []Source {
	if len(override) == 0 {
		return append([]Source(nil), base...)
	}

	result := append([]Source(nil), base...)
	index := make(map[string]int, len(result))
	for i, src := range result {
		index[src.Name] = i
	}
	for _, src := range override {
		if i, ok := index[src.Name]; ok {
			result[i] = src
			continue
		}
		index[src.Name] = len(result)
		result = append(result, src)
	}
	return result
}
