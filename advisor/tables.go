package advisor

import (
	"advocate-backend/models"
)

// DefaultIssues returns the built-in issue table in definition order
func DefaultIssues() []models.Issue {
	return []models.Issue{
		// Property related
		{
			ID:          "theft",
			Section:     "Section 378",
			Description: "Theft is defined as dishonestly taking any movable property out of the possession of any person without that person's consent.",
			Punishment:  "Imprisonment up to 3 years or fine or both",
			Category:    "Property Crime",
		},
		{
			ID:          "robbery",
			Section:     "Section 390",
			Description: "Robbery is theft or extortion committed in the presence of the person robbed, and by means of violence or fear.",
			Punishment:  "Imprisonment up to 10 years and fine",
			Category:    "Property Crime",
		},
		{
			ID:          "criminal breach of trust",
			Section:     "Section 405",
			Description: "Whoever, being in any manner entrusted with property, dishonestly misappropriates or converts to his own use that property.",
			Punishment:  "Imprisonment up to 3 years or fine or both",
			Category:    "Property Crime",
		},

		// Violence related
		{
			ID:          "assault",
			Section:     "Section 351",
			Description: "Assault is making a gesture or preparation intending or knowing it to be likely that such gesture or preparation will cause any person present to apprehend that he who makes that gesture or preparation is about to use criminal force to him.",
			Punishment:  "Imprisonment up to 3 months or fine up to Rs. 500 or both",
			Category:    "Violence",
		},
		{
			ID:          "criminal force",
			Section:     "Section 350",
			Description: "Whoever intentionally uses force to any person, without that person's consent, in order to commit an offence, or intending by the use of such force to cause, or knowing it to be likely that by the use of such force he will cause injury, fear or annoyance to the person to whom the force is used.",
			Punishment:  "Imprisonment up to 3 months or fine up to Rs. 500 or both",
			Category:    "Violence",
		},
		{
			ID:          "domestic violence",
			Section:     "Section 498A",
			Description: "Husband or relative of husband of a woman subjecting her to cruelty.",
			Punishment:  "Imprisonment up to 3 years and fine",
			Category:    "Family Violence",
		},

		// Fraud and cheating
		{
			ID:          "fraud",
			Section:     "Section 420",
			Description: "Cheating and dishonestly inducing delivery of property.",
			Punishment:  "Imprisonment up to 7 years and fine",
			Category:    "Fraud",
		},
		{
			ID:          "cheating",
			Section:     "Section 415",
			Description: "Whoever, by deceiving any person, fraudulently or dishonestly induces the person so deceived to deliver any property to any person, or to consent that any person shall retain any property.",
			Punishment:  "Imprisonment up to 1 year or fine or both",
			Category:    "Fraud",
		},

		// Cyber crimes
		{
			ID:          "cyber crime",
			Section:     "Section 66",
			Description: "Computer related offences under Information Technology Act.",
			Punishment:  "Imprisonment up to 3 years or fine up to Rs. 5 lakh or both",
			Category:    "Cyber Crime",
		},
		{
			ID:          "online fraud",
			Section:     "Section 66C & 66D",
			Description: "Identity theft and cheating by personation using computer resource.",
			Punishment:  "Imprisonment up to 3 years and fine up to Rs. 1 lakh",
			Category:    "Cyber Crime",
		},

		// Workplace
		{
			ID:          "sexual harassment",
			Section:     "Section 354A",
			Description: "Sexual harassment and punishment for sexual harassment.",
			Punishment:  "Imprisonment up to 3 years or fine or both",
			Category:    "Workplace",
		},
		{
			ID:          "wage theft",
			Section:     "Section 25F of Industrial Disputes Act",
			Description: "Non-payment of wages or salary without proper notice.",
			Punishment:  "Fine up to Rs. 1000 or imprisonment up to 6 months or both",
			Category:    "Workplace",
		},

		// Property disputes
		{
			ID:          "trespass",
			Section:     "Section 441",
			Description: "Whoever enters into or upon property in the possession of another with intent to commit an offence or to intimidate, insult or annoy any person in possession of such property.",
			Punishment:  "Imprisonment up to 3 months or fine up to Rs. 500 or both",
			Category:    "Property Dispute",
		},
		{
			ID:          "nuisance",
			Section:     "Section 268",
			Description: "A person is guilty of a public nuisance who does any act or is guilty of an illegal omission which causes any common injury, danger or annoyance to the public.",
			Punishment:  "Fine up to Rs. 200",
			Category:    "Property Dispute",
		},

		// Traffic
		{
			ID:          "rash driving",
			Section:     "Section 279",
			Description: "Whoever drives any vehicle, or rides, on any public way in a manner so rash or negligent as to endanger human life, or to be likely to cause hurt or injury to any other person.",
			Punishment:  "Imprisonment up to 6 months or fine up to Rs. 1000 or both",
			Category:    "Traffic",
		},
		{
			ID:          "hit and run",
			Section:     "Section 304A",
			Description: "Whoever causes the death of any person by doing any rash or negligent act not amounting to culpable homicide.",
			Punishment:  "Imprisonment up to 2 years or fine or both",
			Category:    "Traffic",
		},

		// Defamation
		{
			ID:          "defamation",
			Section:     "Section 499",
			Description: "Whoever, by words either spoken or intended to be read, or by signs or by visible representations, makes or publishes any imputation concerning any person intending to harm, or knowing or having reason to believe that such imputation will harm, the reputation of such person.",
			Punishment:  "Imprisonment up to 2 years or fine or both",
			Category:    "Defamation",
		},
	}
}

// DefaultPrecedents returns the built-in precedent cases keyed by issue
func DefaultPrecedents() map[string][]models.Precedent {
	return map[string][]models.Precedent{
		"theft": {
			{
				Case:    "State of Maharashtra vs. Vishwanath",
				Year:    "2019",
				Summary: "The court held that temporary deprivation of property constitutes theft even if the intention is to return it later.",
			},
			{
				Case:    "K.N. Mehra vs. State of Rajasthan",
				Year:    "1957",
				Summary: "The Supreme Court clarified that taking property without consent, even temporarily, amounts to theft.",
			},
		},
		"assault": {
			{
				Case:    "Ramesh Kumar vs. State of UP",
				Year:    "2020",
				Summary: "The court clarified that mere words without any gesture or preparation do not amount to assault.",
			},
		},
		"domestic violence": {
			{
				Case:    "Arnesh Kumar vs. State of Bihar",
				Year:    "2014",
				Summary: "The Supreme Court laid down guidelines to prevent misuse of Section 498A and ensure fair investigation.",
			},
		},
		"fraud": {
			{
				Case:    "Inder Singh vs. State of Punjab",
				Year:    "2018",
				Summary: "The court held that online fraud and cheating through digital means are punishable under Section 420.",
			},
		},
		"cyber crime": {
			{
				Case:    "Shreya Singhal vs. Union of India",
				Year:    "2015",
				Summary: "The Supreme Court struck down Section 66A of IT Act as unconstitutional, protecting free speech online.",
			},
		},
	}
}

// DefaultKeywordRules returns the built-in keyword rules. Order matters:
// it decides which keyword contributes an issue first.
func DefaultKeywordRules() []models.KeywordRule {
	return []models.KeywordRule{
		// Property related
		{Keyword: "stolen", Issues: []string{"theft", "robbery"}},
		{Keyword: "stole", Issues: []string{"theft", "robbery"}},
		{Keyword: "theft", Issues: []string{"theft"}},
		{Keyword: "robbery", Issues: []string{"robbery"}},
		{Keyword: "security deposit", Issues: []string{"criminal breach of trust", "fraud"}},
		{Keyword: "landlord", Issues: []string{"criminal breach of trust", "fraud"}},
		{Keyword: "property", Issues: []string{"theft", "trespass", "criminal breach of trust"}},

		// Violence related
		{Keyword: "assault", Issues: []string{"assault", "criminal force"}},
		{Keyword: "hit", Issues: []string{"assault", "criminal force"}},
		{Keyword: "beat", Issues: []string{"assault", "criminal force"}},
		{Keyword: "violence", Issues: []string{"assault", "criminal force", "domestic violence"}},
		{Keyword: "domestic", Issues: []string{"domestic violence"}},
		{Keyword: "spouse", Issues: []string{"domestic violence"}},
		{Keyword: "husband", Issues: []string{"domestic violence"}},
		{Keyword: "wife", Issues: []string{"domestic violence"}},

		// Fraud related
		{Keyword: "cheated", Issues: []string{"fraud", "cheating"}},
		{Keyword: "cheat", Issues: []string{"fraud", "cheating"}},
		{Keyword: "fraud", Issues: []string{"fraud", "cheating"}},
		{Keyword: "online", Issues: []string{"cyber crime", "online fraud"}},
		{Keyword: "internet", Issues: []string{"cyber crime", "online fraud"}},
		{Keyword: "social media", Issues: []string{"cyber crime", "defamation"}},
		{Keyword: "rumors", Issues: []string{"defamation"}},
		{Keyword: "false", Issues: []string{"defamation", "fraud"}},

		// Workplace
		{Keyword: "salary", Issues: []string{"wage theft"}},
		{Keyword: "employer", Issues: []string{"wage theft", "sexual harassment"}},
		{Keyword: "workplace", Issues: []string{"sexual harassment", "wage theft"}},
		{Keyword: "harassment", Issues: []string{"sexual harassment"}},

		// Property disputes
		{Keyword: "neighbor", Issues: []string{"nuisance", "trespass"}},
		{Keyword: "noise", Issues: []string{"nuisance"}},
		{Keyword: "loud", Issues: []string{"nuisance"}},
		{Keyword: "music", Issues: []string{"nuisance"}},

		// Traffic
		{Keyword: "accident", Issues: []string{"rash driving", "hit and run"}},
		{Keyword: "road", Issues: []string{"rash driving", "hit and run"}},
		{Keyword: "car", Issues: []string{"rash driving", "hit and run"}},
		{Keyword: "vehicle", Issues: []string{"rash driving", "hit and run"}},

		// Defamation
		{Keyword: "defamation", Issues: []string{"defamation"}},
		{Keyword: "reputation", Issues: []string{"defamation"}},
		{Keyword: "photos", Issues: []string{"defamation", "cyber crime"}},
		{Keyword: "images", Issues: []string{"defamation", "cyber crime"}},
	}
}
