package rag

import (
	"fmt"
	"strings"
)

// promptTemplate is the fixed grounding instruction. It is configuration
// rather than control logic: the rules force accuracy, madde citations,
// paraphrasing over verbatim quotes, and an explicit "Bilgi yok" when
// the context cannot answer.
const promptTemplate = `Sen T.C. Anayasası konusunda uzman, yardımsever bir hukuk asistanısın. Kullanıcının sorusunu verilen bağlama göre yanıtla.

Kurallar:
1. Cevabın NET, DOĞRU ve ANLAŞILIR olsun.
2. Hukuki metni robot gibi kopyalama; maddeleri kendi cümlelerinle sadeleştirerek özetle.
3. Yanlış veya uydurma bilgi verme. Bağlamda yoksa 'Bilgi yok' de.
4. İlgili madde numaralarını (örn: Madde 1) mutlaka belirt.

Bağlam:
%s

Soru: %s`

// BuildPrompt renders the admitted context docs and the question into a
// single grounding instruction. Returns "" when docs is empty; callers
// must have handled NoEvidence or Greeting upstream.
func BuildPrompt(question string, docs []ContextDoc) string {
	if len(docs) == 0 {
		return ""
	}

	blocks := make([]string, len(docs))
	for i, doc := range docs {
		blocks[i] = fmt.Sprintf("Madde %s (%s):\n%s", maddeLabel(doc.Madde), doc.Metadata.Konu, doc.Text)
	}

	return fmt.Sprintf(promptTemplate, strings.Join(blocks, "\n\n"), question)
}

// maddeLabel renders an article number, falling back to "?" for
// articles without one (preamble, headings).
func maddeLabel(madde *int) string {
	if madde == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *madde)
}
