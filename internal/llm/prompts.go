package llm

import (
	"fmt"
	"strings"
)

// Placeholder literals substituted when an optional input is empty.
const (
	locationUnspecified = "Non spécifié"
	noNotesProvided     = "Aucune note fournie"
)

const jobInfoExtractionTemplate = `Tu es un assistant expert en analyse d'offres d'emploi. Extrais les informations clés de la description de poste suivante.

**Description du poste:**
{job_description}

IMPORTANT: Réponds UNIQUEMENT en français. Extrais et retourne les informations au format JSON suivant:
{
  "company_name": "<nom de l'entreprise>",
  "position_title": "<titre du poste>",
  "location": "<lieu du poste (ville, pays, ou 'Remote' si télétravail)>",
  "company_description": "<description courte de l'entreprise en 1-2 phrases>"
}

Si une information n'est pas disponible dans la description, utilise une chaîne vide "".`

const strategicAnalysisTemplate = `Tu es un recruteur technique senior spécialisé dans les stages backend et orientés systèmes en France.

Tu évalues plus de 100 candidats par an, notamment des étudiants d'écoles comme 42, Epitech, et autres formations tech.

Ton rôle n'est PAS d'être poli ou encourageant.
Ton rôle est d'évaluer stratégiquement l'adéquation réelle.

-----------------------------------
OFFRE D'EMPLOI
-----------------------------------
{job_description}

Entreprise: {company_name}
Poste: {position_title}
Lieu: {location}

-----------------------------------
PROFIL DU CANDIDAT
-----------------------------------
{cv_text}

Si le profil est incomplet, base ton raisonnement strictement sur les informations fournies.

-----------------------------------
TA MISSION
-----------------------------------

Tu dois:

1. Identifier ce que l'entreprise valorise RÉELLEMENT (pas juste ce qui est écrit)
2. Détecter les attentes cachées ou priorités techniques non énoncées
3. Évaluer l'adéquation réelle du candidat (sois critique mais juste)
4. Identifier les lacunes concrètes en compétences
5. Prendre position: est-ce stratégiquement bon ou non?
6. Fournir des conseils de positionnement actionnables

Évite:
- Les conseils de carrière génériques
- Reformuler la description de poste
- Les réponses diplomatiques ou neutres

Si ta réponse pourrait s'appliquer à 80% des candidats, c'est un échec.

Sois honnête et critique, mais reste constructif. Les évaluations trop positives OU trop négatives sans justification sont pénalisées.

-----------------------------------
FORMAT DE SORTIE (JSON STRICT)
-----------------------------------

{
  "match_rate": "Score réaliste (0-100). Déduire 10 points par 'Critical Gap' identifié.",
  "tech_stack": ["Liste exhaustive des technos de l'offre"],
  "real_priorities": [
    "Priorité business (ex: stabiliser l'existant plutôt que créer du neuf)",
    "Priorité d'équipe (ex: besoin de leadership technique vs exécution pure)"
  ],
  "hidden_expectations": [
    "Ce qui est lu entre les lignes (ex: forte tolérance à l'ambiguïté, autonomie totale)"
  ],
  "fit_analysis": {
    "strong_match": ["Compétences prouvées par des réalisations passées"],
    "weak_match": ["Compétences présentes mais nécessitant une mise à niveau"],
    "critical_gaps": ["Absence de compétence bloquante pour les missions critiques"]
  },
  "strategic_verdict": {
    "recommendation": "APPLY / STRATEGIC_APPLY / SKIP",
    "reasoning": "Analyse objective du ROI de la candidature en 2 phrases.",
    "risk_level": "LOW / MEDIUM / HIGH"
  },
  "positioning_strategy": {
    "cv_highlights": "Quels chiffres ou projets spécifiques mettre en gras",
    "cover_letter_angle": "Le 'Pain Point' principal du recruteur auquel répondre",
    "interview_prep": "Le sujet technique ou soft-skill sur lequel insister"
  },
  "tactical_examples": [
    "Preuve d'impact : [Action concrète] + [Contexte] + [Résultat chiffré ou qualitatif]. Bannir les adjectifs 'passionné' ou 'expert'.",
    "Collaboration : Comment une compétence technique a aidé l'équipe ou le métier à avancer.",
    "Résolution : Un exemple de problème complexe résolu sans ego, axé sur la solution."
  ],
  "interview_traps": [
    "Questions déstabilisantes liées à la stack ou au secteur d'activité"
  ],
  "missions": [
    "Responsabilités réelles reformulées pour en extraire la valeur métier"
  ]
}

IMPORTANT: Retourne UNIQUEMENT du JSON valide en français. Sois spécifique et actionnable.`

// BuildJobInfoExtractionPrompt returns the extraction prompt for a raw job
// description. Pure: no I/O, same input yields the same string.
func BuildJobInfoExtractionPrompt(jobDescription string) string {
	return strings.ReplaceAll(jobInfoExtractionTemplate, "{job_description}", jobDescription)
}

// BuildJobAnalysisPrompt returns the strategic-analysis prompt. An empty
// location is substituted with the "Non spécifié" literal.
func BuildJobAnalysisPrompt(cvText, jobDescription, companyName, positionTitle, location string) string {
	if location == "" {
		location = locationUnspecified
	}
	return strings.NewReplacer(
		"{cv_text}", cvText,
		"{job_description}", jobDescription,
		"{company_name}", companyName,
		"{position_title}", positionTitle,
		"{location}", location,
	).Replace(strategicAnalysisTemplate)
}

// BuildCompanyBlurbPrompt asks for a short company description drawn from the
// model's background knowledge. No live retrieval is involved.
func BuildCompanyBlurbPrompt(companyName string) string {
	return fmt.Sprintf(`Fournis une description courte (2-3 phrases) de l'entreprise "%s" basée sur tes connaissances. Décris ce qu'ils font, leur secteur d'activité, et leur taille approximative si connue. Réponds UNIQUEMENT en français, en texte simple (pas de JSON).`, companyName)
}

// BuildCoverLetterAdvicePrompt returns the cover-letter-advice prompt. Empty
// location and companyDescription omit their whole line; empty userNotes is
// replaced with the "Aucune note fournie" literal.
func BuildCoverLetterAdvicePrompt(cvText, companyName, positionTitle, location, companyDescription, jobDescription, userNotes, profileAlignment string) string {
	if userNotes == "" {
		userNotes = noNotesProvided
	}

	var b strings.Builder
	b.WriteString(`Tu es un conseiller en carrière expert. Au lieu de rédiger une lettre de motivation complète, fournis des CONSEILS STRATÉGIQUES sur comment le candidat devrait aborder sa lettre de motivation.

IMPORTANT: Réponds UNIQUEMENT en français. Tous tes conseils doivent être en français.

CV DU CANDIDAT:
`)
	b.WriteString(cvText)
	b.WriteString("\n\nOFFRE D'EMPLOI:\nEntreprise: ")
	b.WriteString(companyName)
	b.WriteString("\nPoste: ")
	b.WriteString(positionTitle)
	b.WriteString("\n")
	if location != "" {
		b.WriteString("Lieu: ")
		b.WriteString(location)
		b.WriteString("\n")
	}
	if companyDescription != "" {
		b.WriteString("À propos de l'entreprise: ")
		b.WriteString(companyDescription)
		b.WriteString("\n")
	}
	b.WriteString("\nDescription du poste:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\nALIGNEMENT DU PROFIL:\n")
	b.WriteString(profileAlignment)
	b.WriteString("\n\nNOTES PERSONNELLES DU CANDIDAT:\n")
	b.WriteString(userNotes)
	b.WriteString(`

Fournis des conseils stratégiques structurés en JSON avec les sections suivantes.

IMPORTANT: Tous les tableaux doivent contenir UNIQUEMENT des chaînes de caractères simples, PAS d'objets imbriqués.

{
  "angles_cles": [
    "Premier angle principal à mettre en avant (texte simple)",
    "Deuxième angle principal (texte simple)",
    "Troisième angle principal (texte simple)"
  ],
  "experiences_a_highlighter": [
    "Première expérience ou projet à mentionner et pourquoi (tout en une seule chaîne de texte)",
    "Deuxième expérience ou projet (tout en une seule chaîne de texte)"
  ],
  "alignement_entreprise": [
    "Premier point d'alignement avec l'entreprise (texte simple)",
    "Deuxième point d'alignement (texte simple)"
  ],
  "preoccupations_a_adresser": [
    "Première préoccupation potentielle et comment l'adresser (tout en une seule chaîne de texte)",
    "Deuxième préoccupation si applicable (tout en une seule chaîne de texte)"
  ],
  "exemples_paragraphes": [
    "Exemple de paragraphe 1 que le candidat peut réutiliser ou adapter dans sa lettre (2-3 phrases complètes)",
    "Exemple de paragraphe 2 que le candidat peut réutiliser ou adapter (2-3 phrases complètes)",
    "Exemple de paragraphe 3 que le candidat peut réutiliser ou adapter (2-3 phrases complètes)"
  ],
  "conseil_ouverture": "Conseil spécifique pour l'ouverture de la lettre en une phrase",
  "conseil_cloture": "Conseil spécifique pour la conclusion de la lettre en une phrase"
}

RAPPEL CRITIQUE:
- Chaque élément des tableaux doit être une CHAÎNE DE TEXTE SIMPLE, pas un objet
- Les exemples_paragraphes doivent être des paragraphes COMPLETS et RÉUTILISABLES (2-3 phrases chacun)
- Ces paragraphes doivent être personnalisés au profil du candidat et au poste

Exemple de bon paragraphe:
"Mon expérience de 2 ans en développement React chez [Entreprise X] m'a permis de maîtriser les architectures modernes de frontend. J'ai notamment développé un système de design system utilisé par plus de 50 développeurs, ce qui correspond parfaitement à vos besoins en matière de scalabilité et de maintenabilité."

Sois spécifique et actionnable. Utilise les informations du CV et de l'offre pour donner des conseils personnalisés.`)

	return b.String()
}
