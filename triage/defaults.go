package triage

import "medassist/types"

// DefaultAdvisories is the built-in advisory dictionary covering common
// drugs, symptoms and misconceptions. Order here is the order advisories
// are shown in.
func DefaultAdvisories() []Advisory {
	return []Advisory{
		{"antibiotics", "Misuse of antibiotics can cause antibiotic resistance."},
		{"vaccines", "Vaccines do not cause autism; extensive research confirms safety."},
		{"ibuprofen", "Long-term/high-dose ibuprofen may harm kidneys or cause stomach bleeding."},
		{"aspirin", "Daily aspirin is not suitable for everyone and can cause bleeding; check with your doctor first."},
		{"paracetamol", "Exceeding the recommended paracetamol dose can cause severe liver damage."},
		{"acetaminophen", "Exceeding the recommended acetaminophen dose can cause severe liver damage."},
		{"detox", "Your body naturally detoxifies; external detox methods may be harmful."},
		{"supplement", "Supplements are not a substitute for a balanced diet and can interact with medicines."},
		{"antidepressant", "Never stop antidepressants abruptly; discuss tapering with your doctor."},
		{"insulin", "Insulin dosing errors are dangerous; never adjust doses without medical advice."},
		{"fatigue", "Persistent fatigue might indicate underlying health issues."},
		{"vision loss", "Sudden vision loss is a medical emergency; seek immediate help."},
		{"headache", "Sudden severe headache could signal stroke or aneurysm; seek immediate care."},
		{"chest pain", "Chest pain may indicate a heart attack; seek immediate medical help."},
		{"rash", "Rashes with fever or breathing issues may be serious; seek urgent care."},
		{"dizziness", "Recurring dizziness can have many causes and is worth discussing with a doctor."},
	}
}

// DefaultSeverityGroups is the built-in classification policy, highest
// priority first.
func DefaultSeverityGroups() []Group {
	return []Group{
		{
			Tag: types.SeverityImmediate,
			Keywords: []string{
				"chest pain",
				"vision loss",
				"stroke",
				"aneurysm",
				"sudden severe headache",
				"difficulty breathing",
				"seizure",
			},
		},
		{
			Tag: types.SeverityUrgent,
			Keywords: []string{
				"high fever",
				"severe pain",
				"persistent vomiting",
				"unusual rash",
				"dizziness",
				"confusion",
			},
		},
	}
}
