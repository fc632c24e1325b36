package content

// Default returns the built-in pt-BR catalog. Every call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Brand: Brand{
			Name:         "CloudX",
			FallbackText: "CloudX Aceleradora",
			Description:  "Aceleradora de negócios full stack: tráfego pago, IA para vendas, CRM e desenvolvimento de software para crescimento previsível.",
		},
		Nav: Nav{
			Links: []NavLink{
				{Label: "Problema", Href: "#problema"},
				{Label: "Solução", Href: "#solucao"},
				{Label: "Squad", Href: "#squad"},
				{Label: "Resultados", Href: "#resultados"},
			},
			CTA:       "Agendar",
			MobileCTA: "Agendar Consultoria",
		},
		Hero: Hero{
			Eyebrow:   "Cloudx - Aceleradora de Negócios",
			Title:     "Você Fatura +R$50K/mês,\nMas Travou na Escala?",
			Highlight: "Travou",
			Subtitle:  "Instale na sua empresa a mesma arquitetura de receita que empresas de 7 e 8 dígitos usam sem contratar dezenas de pessoas.",
			CTA:       "Destavar Crescimento",
			Assurance: "Acompanhamento direto pelos Heads",
		},
		Problem: Problem{
			Title:     "Você Já Passou Disso. Agora Precisa de Estrutura.",
			Highlight: "Estrutura",
			PainPoints: []PainPoint{
				{Text: "Marketing gera leads, mas poucos viram clientes reais"},
				{Text: "Você é o gargalo: sem você, a venda não acontece"},
				{Text: "Operação funciona, mas o custo explode ao escalar"},
				{Text: "Falta previsibilidade de receita recorrente"},
				{Text: "Contratar e treinar time interno é lento e caro"},
			},
			ClosingTitle:     "O problema não é você.",
			ClosingText:      "É a falta de um sistema integrado.",
			ClosingHighlight: "sistema integrado",
		},
		Solution: Solution{
			Title:    "Tríade Integrada™",
			Subtitle: "O framework proprietário que transforma empresas em máquinas de crescimento previsível.",
			Pillars: []Pillar{
				{
					Title:       "01. Aquisição Inteligente",
					Icon:        "target",
					Description: "Tráfego pago otimizado + captação omnichannel.",
					Items:       []string{"Meta Ads, Google Ads", "Funis Completos", "Testes A/B"},
				},
				{
					Title:       "02. Conversão via IA",
					Icon:        "brain",
					Description: "SDR virtual + CRM inteligente + follow-up.",
					Items:       []string{"IA SDR 24h", "Lead Scoring", "Scripts Otimizados"},
				},
				{
					Title:       "03. Inovação Estruturada",
					Icon:        "rocket",
					Description: "Novas ofertas + desenvolvimento tech.",
					Items:       []string{"High Ticket Offers", "Dev de Sistemas", "APIs & Apps"},
				},
			},
			CTA: "Implementar Tríade",
		},
		Squad: Squad{
			Title:    "Squad as a Service",
			Subtitle: "Você não contrata uma agência. Você ganha um time completo e multidisciplinar dedicado ao seu crescimento.",
			Members: []TeamMember{
				{Role: "Head de Marketing", Icon: "bar-chart-3"},
				{Role: "Gestor de Projetos", Icon: "target"},
				{Role: "Gestor de Tráfego", Icon: "users"},
				{Role: "Designer & Criativos", Icon: "zap"},
				{Role: "Dev de Software", Icon: "settings"},
			},
			Comparison: Comparison{
				Ours:   "CloudX",
				Versus: "vs",
				Theirs: "Tradicional",
				Rows: []ComparisonRow{
					{Text: "Time rodando no Dia 1", Included: true},
					{Text: "Custo 60% menor que CLT", Included: true},
					{Text: "Zero risco trabalhista", Included: true},
					{Text: "Expertise Senior", Included: true},
					{Text: "Escalável sob demanda", Included: true},
				},
				FootnoteLabel: "Modelo Tradicional:",
				Footnote:      "Processos lentos, custos fixos altos e risco de turnover constante.",
			},
		},
		Metrics: Metrics{
			Items: []Metric{
				{Value: "+15 M", Label: "+15 Milhões Investidos em Anúncio"},
				{Value: "60%", Label: "Redução no CAC"},
				{Value: "24h", Label: "SDR Response Time"},
				{Value: "100+", Label: "Sistemas Entregues"},
			},
		},
		Deliverables: Deliverables{
			Title:    "Escopo de Entrega",
			Subtitle: "Implementação completa, sem consultoria teórica.",
			Items: []Deliverable{
				{Title: "Máquina de Aquisição", Description: "Ads e Funis rodando", Icon: "bar-chart-3"},
				{Title: "Máquina de Conversão", Description: "IA e CRM Inteligente", Icon: "brain"},
				{Title: "Inovação Tech", Description: "Apps e Sistemas", Icon: "rocket"},
				{Title: "Squad Dedicado", Description: "Sem gestão de RH", Icon: "users"},
				{Title: "BI & Dados", Description: "Dashboards reais", Icon: "target"},
				{Title: "Acompanhamento", Description: "Suporte dos Heads", Icon: "shield-check"},
			},
		},
		FinalCTA: FinalCTA{
			Title:   "Pronto Para Instalar Uma Arquitetura de Receita Real?",
			Text:    "Agende uma reunião estratégica. Vamos analisar seu cenário e mostrar como a Tríade pode destavar seu crescimento.",
			CTA:     "Agendar Reunião Estratégica",
			Variant: "tertiary",
			Note:    "Vagas limitadas para acompanhamento direto",
			Steps: []Step{
				{
					Title: "Preencha a Aplicação",
					Text:  "Informe os detalhes da sua operação e o seu cenário atual. Garantimos o sigilo absoluto dos seus dados.",
				},
				{
					Title: "Aguarde o Contato",
					Text:  "Em poucos minutos (horário comercial), nossos especialistas analisarão seu perfil e entrarão em contato.",
				},
			},
		},
		FAQ: FAQ{
			Title: "Dúvidas Frequentes",
			Entries: []FAQEntry{
				{
					Question: "O que a CloudX faz exatamente?",
					Answer:   "Somos uma Aceleradora de Negócios Full Stack. Não somos apenas uma agência. Integramos Tráfego Pago, Engenharia de Dados (CRM), Inteligência Artificial para vendas e Desenvolvimento de Software para criar uma infraestrutura de crescimento previsível e escalável para sua empresa.",
				},
				{
					Question: "Em quanto tempo verei resultados?",
					Answer:   "O tempo varia conforme o estágio atual do negócio e o orçamento. No entanto, nosso foco é tração rápida. A maioria dos nossos parceiros nota um impacto significativo na qualificação de leads e no volume de vendas entre 30 a 60 dias de implementação da Tríade Integrada™.",
				},
				{
					Question: "A CloudX atende qualquer tipo de empresa?",
					Answer:   "Nosso framework completo é desenhado para empresas que já possuem validação de mercado e faturamento recorrente (acima de R$30k/mês). Porém, possuímos soluções modulares para negócios em fase de crescimento que desejam escalar. Realizamos uma análise prévia para garantir que podemos entregar ROI real.",
				},
				{
					Question: "Vocês gerenciam redes sociais (Social Media)?",
					Answer:   "Sim. Nossa vertical de Branding e Criativos cuida da identidade visual e posicionamento estratégico. Não fazemos apenas 'posts', criamos conteúdo intencional focado em autoridade e conversão, alinhado com as campanhas de tráfego pago para maximizar resultados.",
				},
			},
		},
		Footer: Footer{
			Company:   "Cloud Digital Ltda",
			CNPJ:      "39.356.141/0001-87",
			Copyright: "CloudX",
			Social: []SocialLink{
				{
					Label: "Instagram",
					Href:  "https://www.instagram.com/cloudx.hub?igsh=NnQ3cW45MjQ1aGMx",
					Icon:  "instagram",
				},
			},
		},
	}
}
