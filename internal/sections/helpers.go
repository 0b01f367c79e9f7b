package sections

import (
	"team-site-backend/internal/models"
)

func sectionContent(elem models.SectionElement) map[string]interface{} {
	if contentMap, ok := elem.Content.(map[string]interface{}); ok {
		return contentMap
	}
	return map[string]interface{}{}
}

func getString(content map[string]interface{}, key string) string {
	if content == nil {
		return ""
	}
	if value, ok := content[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func extractSection(elem models.SectionElement) (models.Section, bool) {
	if section, ok := elem.Content.(models.Section); ok {
		return section, true
	}
	if sectionPtr, ok := elem.Content.(*models.Section); ok && sectionPtr != nil {
		return *sectionPtr, true
	}
	return models.Section{}, false
}
