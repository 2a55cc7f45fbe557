package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager renders the built-in notice templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		// Built-ins are compile-checked by the tests, errors here mean a
		// broken source tree.
		_ = tm.AddTemplate(name, body)
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

const (
	TemplateProfileValidated = "profile_validated"
	TemplateProfileRejected  = "profile_rejected"
	TemplateWelcome          = "welcome"
)

var builtinTemplates = map[string]string{
	TemplateProfileValidated: `<p>Bonjour {{.Name}},</p>
<p>Votre profil de professeur a été validé. Il est maintenant visible par les parents sur la plateforme.</p>
<p>L'équipe MonProf</p>`,

	TemplateProfileRejected: `<p>Bonjour {{.Name}},</p>
<p>Votre profil de professeur n'a pas pu être validé pour la raison suivante :</p>
<blockquote>{{.Note}}</blockquote>
<p>Vous pouvez corriger votre profil et le soumettre à nouveau.</p>
<p>L'équipe MonProf</p>`,

	TemplateWelcome: `<p>Bonjour {{.Name}},</p>
<p>Bienvenue sur MonProf. Votre compte est prêt.</p>
<p>L'équipe MonProf</p>`,
}
