package localization

// Default returns the built-in English/French catalog for the risk and
// compliance self-assessment questionnaire.
func Default() *Catalog {
	return NewCatalog(map[string]map[string]string{
		LANG_EN: englishMessages,
		LANG_FR: frenchMessages,
	})
}

var englishMessages = map[string]string{
	KEY_GENERIC_FLAG: "A risk condition was flagged for question %s",

	"areas.governance.name":  "Governance",
	"areas.procurement.name": "Procurement",
	"areas.security.name":    "Security",
	"areas.data.name":        "Data management",
	"areas.privacy.name":     "Privacy",

	// Governance
	"questions.gov_1.prompt":          "Does your department have a documented risk management framework?",
	"questions.gov_1.options.yes":     "Yes, documented and approved",
	"questions.gov_1.options.partial": "Partially documented",
	"questions.gov_1.options.no":      "No",
	"flags.gov_1":                     "No documented risk management framework is in place",

	"questions.gov_2.prompt":             "How often is the risk management framework reviewed?",
	"questions.gov_2.options.annually":   "At least annually",
	"questions.gov_2.options.biennially": "Every two years",
	"questions.gov_2.options.never":      "It has never been reviewed",
	"flags.gov_2":                        "The risk management framework is never reviewed",

	"questions.gov_3.prompt": "Who is the senior official accountable for risk management?",

	// Procurement
	"questions.proc_1.prompt":           "How would you describe contract oversight in your department?",
	"questions.proc_1.options.ad_hoc":   "Ad hoc, no defined process",
	"questions.proc_1.options.defined":  "Defined process, applied inconsistently",
	"questions.proc_1.options.measured": "Defined process, consistently applied and measured",
	"flags.proc_1":                      "Contract oversight is ad hoc",

	"questions.proc_2.prompt":                   "Which controls are applied to sole-source contracts?",
	"questions.proc_2.options.pre_approval":     "Pre-approval above thresholds",
	"questions.proc_2.options.threshold_review": "Periodic threshold reviews",
	"questions.proc_2.options.audit_trail":      "Documented audit trail",
	"questions.proc_2.options.none":             "None of the above",

	"questions.proc_3.prompt":            "Are vendor conflicts of interest screened before contract award?",
	"questions.proc_3.options.always":    "Always",
	"questions.proc_3.options.sometimes": "Sometimes",
	"questions.proc_3.options.no":        "No",
	"flags.proc_3":                       "Vendor conflicts of interest are not screened",

	// Security
	"questions.sec_1.prompt":             "Which safeguards protect departmental systems?",
	"questions.sec_1.options.mfa":        "Multi-factor authentication",
	"questions.sec_1.options.encryption": "Encryption at rest and in transit",
	"questions.sec_1.options.monitoring": "Continuous security monitoring",
	"questions.sec_1.options.none":       "None of the above",
	"flags.sec_1":                        "No technical safeguards are in place",

	"questions.sec_2.prompt":                  "Is there a tested security incident response plan?",
	"questions.sec_2.options.tested_annually": "Yes, tested at least annually",
	"questions.sec_2.options.untested":        "A plan exists but has not been tested",
	"questions.sec_2.options.none":            "No plan exists",
	"flags.sec_2":                             "No security incident response plan exists",

	"questions.sec_3.prompt":            "Is multi-factor authentication enforced for privileged accounts?",
	"questions.sec_3.options.yes":       "Yes, for all privileged accounts",
	"questions.sec_3.options.partially": "For some privileged accounts",
	"questions.sec_3.options.no":        "No",
	"flags.sec_3":                       "Privileged accounts are not protected by multi-factor authentication",

	"questions.sec_4.prompt": "Describe the most recent security incident and its remediation.",

	// Data management
	"questions.data_1.prompt":          "Is there a data classification scheme in use?",
	"questions.data_1.options.yes":     "Yes, applied to all holdings",
	"questions.data_1.options.partial": "Applied to some holdings",
	"questions.data_1.options.no":      "No",
	"flags.data_1":                     "No data classification scheme is in use",

	"questions.data_2.prompt":                   "Where is protected data stored?",
	"questions.data_2.options.approved_cloud":   "Approved cloud services",
	"questions.data_2.options.onprem":           "Departmental data centres",
	"questions.data_2.options.personal_devices": "Personal devices",
	"questions.data_2.options.unknown":          "Unknown",

	"questions.data_3.prompt":            "Are retention and disposition schedules applied?",
	"questions.data_3.options.always":    "Always",
	"questions.data_3.options.sometimes": "Sometimes",
	"questions.data_3.options.never":     "Never",
	"flags.data_3":                       "Retention and disposition schedules are not applied",

	// Privacy
	"questions.priv_1.prompt":            "Are privacy impact assessments completed for new programs?",
	"questions.priv_1.options.always":    "Always",
	"questions.priv_1.options.sometimes": "Sometimes",
	"questions.priv_1.options.never":     "Never",
	"flags.priv_1":                       "Privacy impact assessments are not completed",

	"questions.priv_2.prompt":          "Is an inventory of personal information holdings maintained?",
	"questions.priv_2.options.yes":     "Yes, kept up to date",
	"questions.priv_2.options.partial": "Exists but is out of date",
	"questions.priv_2.options.no":      "No",
	"flags.priv_2":                     "No inventory of personal information holdings exists",

	"questions.priv_3.prompt": "Who is the departmental privacy coordinator?",

	// Notification emails
	"emails.assignment.subject": "You have been assigned a self-assessment section",
	"emails.assignment.body":    "<p>Hello %s,</p><p>You have been assigned the <b>%s</b> section of your department's risk and compliance self-assessment.</p><p>Please complete the assigned questions at your earliest convenience.</p>",
}

var frenchMessages = map[string]string{
	KEY_GENERIC_FLAG: "Une condition de risque a été signalée pour la question %s",

	"areas.governance.name":  "Gouvernance",
	"areas.procurement.name": "Approvisionnement",
	"areas.security.name":    "Sécurité",
	"areas.data.name":        "Gestion des données",
	"areas.privacy.name":     "Protection des renseignements personnels",

	// Gouvernance
	"questions.gov_1.prompt":          "Votre ministère dispose-t-il d'un cadre de gestion des risques documenté?",
	"questions.gov_1.options.yes":     "Oui, documenté et approuvé",
	"questions.gov_1.options.partial": "Partiellement documenté",
	"questions.gov_1.options.no":      "Non",
	"flags.gov_1":                     "Aucun cadre de gestion des risques documenté n'est en place",

	"questions.gov_2.prompt":             "À quelle fréquence le cadre de gestion des risques est-il révisé?",
	"questions.gov_2.options.annually":   "Au moins une fois par année",
	"questions.gov_2.options.biennially": "Tous les deux ans",
	"questions.gov_2.options.never":      "Il n'a jamais été révisé",
	"flags.gov_2":                        "Le cadre de gestion des risques n'est jamais révisé",

	"questions.gov_3.prompt": "Qui est le cadre supérieur responsable de la gestion des risques?",

	// Approvisionnement
	"questions.proc_1.prompt":           "Comment décririez-vous la surveillance des contrats dans votre ministère?",
	"questions.proc_1.options.ad_hoc":   "Ponctuelle, aucun processus défini",
	"questions.proc_1.options.defined":  "Processus défini, appliqué de façon inégale",
	"questions.proc_1.options.measured": "Processus défini, appliqué uniformément et mesuré",
	"flags.proc_1":                      "La surveillance des contrats est ponctuelle",

	"questions.proc_2.prompt":                   "Quels contrôles sont appliqués aux contrats à fournisseur unique?",
	"questions.proc_2.options.pre_approval":     "Approbation préalable au-delà des seuils",
	"questions.proc_2.options.threshold_review": "Examens périodiques des seuils",
	"questions.proc_2.options.audit_trail":      "Piste de vérification documentée",
	"questions.proc_2.options.none":             "Aucun de ces contrôles",

	"questions.proc_3.prompt":            "Les conflits d'intérêts des fournisseurs sont-ils vérifiés avant l'attribution des contrats?",
	"questions.proc_3.options.always":    "Toujours",
	"questions.proc_3.options.sometimes": "Parfois",
	"questions.proc_3.options.no":        "Non",
	"flags.proc_3":                       "Les conflits d'intérêts des fournisseurs ne sont pas vérifiés",

	// Sécurité
	"questions.sec_1.prompt":             "Quelles mesures de protection couvrent les systèmes ministériels?",
	"questions.sec_1.options.mfa":        "Authentification multifacteur",
	"questions.sec_1.options.encryption": "Chiffrement au repos et en transit",
	"questions.sec_1.options.monitoring": "Surveillance continue de la sécurité",
	"questions.sec_1.options.none":       "Aucune de ces mesures",
	"flags.sec_1":                        "Aucune mesure de protection technique n'est en place",

	"questions.sec_2.prompt":                  "Existe-t-il un plan d'intervention en cas d'incident de sécurité mis à l'essai?",
	"questions.sec_2.options.tested_annually": "Oui, mis à l'essai au moins une fois par année",
	"questions.sec_2.options.untested":        "Un plan existe mais n'a pas été mis à l'essai",
	"questions.sec_2.options.none":            "Aucun plan n'existe",
	"flags.sec_2":                             "Aucun plan d'intervention en cas d'incident de sécurité n'existe",

	"questions.sec_3.prompt":            "L'authentification multifacteur est-elle exigée pour les comptes privilégiés?",
	"questions.sec_3.options.yes":       "Oui, pour tous les comptes privilégiés",
	"questions.sec_3.options.partially": "Pour certains comptes privilégiés",
	"questions.sec_3.options.no":        "Non",
	"flags.sec_3":                       "Les comptes privilégiés ne sont pas protégés par l'authentification multifacteur",

	"questions.sec_4.prompt": "Décrivez le plus récent incident de sécurité et les mesures correctives prises.",

	// Gestion des données
	"questions.data_1.prompt":          "Un système de classification des données est-il utilisé?",
	"questions.data_1.options.yes":     "Oui, appliqué à tous les fonds de renseignements",
	"questions.data_1.options.partial": "Appliqué à certains fonds",
	"questions.data_1.options.no":      "Non",
	"flags.data_1":                     "Aucun système de classification des données n'est utilisé",

	"questions.data_2.prompt":                   "Où les données protégées sont-elles stockées?",
	"questions.data_2.options.approved_cloud":   "Services infonuagiques approuvés",
	"questions.data_2.options.onprem":           "Centres de données ministériels",
	"questions.data_2.options.personal_devices": "Appareils personnels",
	"questions.data_2.options.unknown":          "Inconnu",

	"questions.data_3.prompt":            "Les calendriers de conservation et d'élimination sont-ils appliqués?",
	"questions.data_3.options.always":    "Toujours",
	"questions.data_3.options.sometimes": "Parfois",
	"questions.data_3.options.never":     "Jamais",
	"flags.data_3":                       "Les calendriers de conservation et d'élimination ne sont pas appliqués",

	// Protection des renseignements personnels
	"questions.priv_1.prompt":            "Des évaluations des facteurs relatifs à la vie privée sont-elles réalisées pour les nouveaux programmes?",
	"questions.priv_1.options.always":    "Toujours",
	"questions.priv_1.options.sometimes": "Parfois",
	"questions.priv_1.options.never":     "Jamais",
	"flags.priv_1":                       "Les évaluations des facteurs relatifs à la vie privée ne sont pas réalisées",

	"questions.priv_2.prompt":          "Un inventaire des fonds de renseignements personnels est-il tenu?",
	"questions.priv_2.options.yes":     "Oui, tenu à jour",
	"questions.priv_2.options.partial": "Existe mais n'est pas à jour",
	"questions.priv_2.options.no":      "Non",
	"flags.priv_2":                     "Aucun inventaire des fonds de renseignements personnels n'existe",

	"questions.priv_3.prompt": "Qui est le coordonnateur ministériel de la protection des renseignements personnels?",

	// Notification emails
	"emails.assignment.subject": "Une section d'auto-évaluation vous a été assignée",
	"emails.assignment.body":    "<p>Bonjour %s,</p><p>La section <b>%s</b> de l'auto-évaluation des risques et de la conformité de votre ministère vous a été assignée.</p><p>Veuillez répondre aux questions assignées dès que possible.</p>",
}
