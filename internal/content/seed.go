package content

import "github.com/web3hub/hub-engine/internal/models"

// Seed collections mirror the launch content of the site. In production
// deployments the CMS provider replaces them; the static provider also
// accepts per-collection YAML overrides.

func seedLearnContent() []models.Content {
	return []models.Content{
		{
			ID:          "1",
			Title:       "Expert Insights on LinkedIn",
			Description: "My LinkedIn newsletter is a direct channel for my latest analysis on Web3 trends, market signals, and strategic frameworks. Essential reading for leaders.",
			Category:    "Market Analysis",
			ImageURL:    "https://picsum.photos/seed/linkedin-expert/600/400",
			Type:        models.ContentArticle,
			FullContent: "In the rapidly evolving Web3 landscape, staying ahead requires more than just news. My LinkedIn newsletter delivers high-signal intelligence: concise, actionable insights into emerging trends, deep-dives into protocol mechanics, and the strategic frameworks I use to advise top-tier projects. Each dispatch is designed not just to inform, but to equip you with the mental models needed to navigate complexity and identify unique opportunities.",
		},
		{
			ID:          "2",
			Title:       "Blockchain: Architecting Trust in a Decentralized World",
			Description: "A strategic primer on blockchain technology. I dissect how it works not just technically, but as a new foundation for economic and social coordination.",
			Category:    "Core Concepts",
			ImageURL:    "https://picsum.photos/seed/blockchain-arch/600/400",
			Type:        models.ContentArticle,
			FullContent: "To lead in Web3, you must understand its bedrock: blockchain. At its core, a blockchain is an immutable, distributed ledger, shared and synchronized across a network of computers, where each new block is cryptographically chained to the last. Instead of a single entity controlling the ledger, a distributed network validates transactions via a consensus mechanism. The strategic implication is what truly matters: blockchain replaces trusted intermediaries with verifiable, programmatic trust, unlocking novel business models and entirely new markets.",
		},
		{
			ID:          "3",
			Title:       "NFTs: The New Architecture of Digital Assets",
			Description: "My analysis of Non-Fungible Tokens as a primitive for digital ownership. I explore their impact beyond art, into identity, finance, and intellectual property.",
			Category:    "Asset Strategy",
			ImageURL:    "https://picsum.photos/seed/nft-arch/600/400",
			Type:        models.ContentArticle,
			FullContent: "Non-Fungible Tokens are often misunderstood as mere digital pictures. They are a fundamental new primitive for digital asset architecture: a unique token on a blockchain representing verifiable ownership of an asset, creating provable digital scarcity and provenance. While the first wave was dominated by art and collectibles, NFTs can represent in-game assets, software licenses, event tickets, credentials, and fractionalized ownership of real-world assets. They are not just a new asset class; they are a new architecture for value.",
		},
		{
			ID:          "4",
			Title:       "DeFi: The Operating System for Open Finance",
			Description: "Explore my framework for understanding Decentralized Finance not as a product, but as a permissionless financial operating system being built in real-time.",
			Category:    "Financial Systems",
			ImageURL:    "https://picsum.photos/seed/defi-os/600/400",
			Type:        models.ContentArticle,
			FullContent: "Decentralized Finance is not simply an alternative to traditional banking; it is a new, open-source operating system for finance. DeFi protocols are money legos: composable smart contracts combined into decentralized exchanges, lending platforms, and stablecoins, all operating without centralized intermediaries. For businesses this means new avenues for capital formation and treasury management; for investors, new yield opportunities with new categories of risk. Leaders must understand DeFi not as a niche, but as the future fabric of capital markets.",
		},
		{
			ID:          "5",
			Title:       "Smart Contracts: The Automation of Trust",
			Description: "A guide to the self-executing code that powers Web3. We balance the technical function with the strategic imperative of understanding their power and limitations.",
			Category:    "Core Concepts",
			ImageURL:    "https://picsum.photos/seed/smartcontract-trust/600/400",
			Type:        models.ContentArticle,
			FullContent: "Smart contracts are the engine of Web3: programs stored on a blockchain that automatically execute when predetermined conditions are met, enforcing the terms of an agreement without a human intermediary. The key insights for a non-technical leader: trustless execution reduces counterparty risk; immutability means the rules are locked once deployed, a strength and a weakness; transparency allows unprecedented auditability. Mastering Web3 strategy requires appreciating both the capabilities and the inherent risks of automating trust.",
		},
		{
			ID:          "6",
			Title:       "Self-Custody: The Principle of Digital Sovereignty",
			Description: "True ownership in Web3 begins with self-custody. This is my essential briefing on wallet security, private key management, and the mindset of digital sovereignty.",
			Category:    "Security & Operations",
			ImageURL:    "https://picsum.photos/seed/self-custody/600/400",
			Type:        models.ContentArticle,
			FullContent: "In Web3, the phrase \"not your keys, not your crypto\" is a fundamental law. Self-custody means you, and only you, control your digital assets through your private keys. While third-party custodians offer convenience, they reintroduce the intermediary risk Web3 is designed to eliminate. My guidance is unequivocal: prioritize hardware wallets for significant value, implement redundant offline seed-phrase storage, and cultivate a security mindset where every transaction is verified. Self-custody is a responsibility, but it is the necessary price of true digital ownership.",
		},
		{
			ID:          "demo1",
			Title:       "Interactive Demo: Mint Your First NFT",
			Description: "Experience the NFT minting process firsthand. This guided simulation lets you upload art, define properties, and mint a token on a test network.",
			Category:    "Interactive Demos",
			ImageURL:    "https://picsum.photos/seed/demomint-tech/600/400",
			Type:        models.ContentDemo,
			Demo:        models.DemoMintNFT,
		},
		{
			ID:          "demo2",
			Title:       "Interactive Demo: DAO Governance Vote",
			Description: "Learn how decentralized governance works. Use your simulated voting power to influence the outcome of a strategic protocol proposal.",
			Category:    "Interactive Demos",
			ImageURL:    "https://picsum.photos/seed/demodao-gov/600/400",
			Type:        models.ContentDemo,
			Demo:        models.DemoDAOVoting,
		},
		{
			ID:          "demo3",
			Title:       "Interactive Demo: DeFi Token Swap",
			Description: "Simulate a core DeFi function by swapping between tokens at mock market rates. Understand the mechanics of a decentralized exchange (DEX).",
			Category:    "Interactive Demos",
			ImageURL:    "https://picsum.photos/seed/demotoken-swap/600/400",
			Type:        models.ContentDemo,
			Demo:        models.DemoTokenSwap,
		},
	}
}

func seedResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "ebook01",
			Title:       "My Web3 Leader's Playbook",
			Description: "My foundational guide to Web3, designed for leaders. A distillation of the essential mental models and strategic frameworks I use to advise category-defining companies.",
			Type:        models.ResourceEBook,
			ImageURL:    "https://picsum.photos/seed/playbook-pro/800/600",
		},
		{
			ID:          "res1",
			Title:       "My Definitive NFT Launch Framework",
			Description: "My proprietary framework to guide you through every stage of launching a successful NFT project, from market positioning to post-mint utility.",
			Type:        models.ResourceChecklist,
			ImageURL:    "https://picsum.photos/seed/nftlaunch-pro/600/400",
		},
		{
			ID:          "res3",
			Title:       "My High-Impact DAO Proposal Template",
			Description: "My battle-tested template for structuring effective governance proposals designed to achieve consensus and drive decisive action in a DAO.",
			Type:        models.ResourceTemplate,
			ImageURL:    "https://picsum.photos/seed/daogov-pro/600/400",
		},
		{
			ID:          "res4",
			Title:       "My Smart Contract Security Overview for Leaders",
			Description: "An essential guide covering the critical security considerations for non-technical leaders to mitigate risk and build resilient protocols.",
			Type:        models.ResourceGuide,
			ImageURL:    "https://picsum.photos/seed/scsecurity-pro/600/400",
		},
		{
			ID:          "res5",
			Title:       "My Web3 Go-to-Market Canvas",
			Description: "My strategic framework to help you design, validate, and execute a winning go-to-market strategy for any Web3 venture.",
			Type:        models.ResourceTemplate,
			ImageURL:    "https://picsum.photos/seed/web3marketing-pro/600/400",
		},
		{
			ID:          "res2",
			Title:       "My DeFi Yield Strategy Primer",
			Description: "A concise guide to understanding the fundamental strategies of DeFi yield generation, complete with my personal risk management frameworks.",
			Type:        models.ResourceGuide,
			ImageURL:    "https://picsum.photos/seed/yieldfarm-pro/600/400",
		},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:           "course-paid-02",
			Title:        "Web3 Strategy for Founders & Enterprises",
			Subtitle:     "My Playbook for Architecting Market Leadership",
			Description:  "This is my definitive masterclass for founders, executives, and investors. I will teach you how to architect defensible business models, design powerful token ecosystems, and navigate the complex Web3 landscape.",
			Type:         models.CoursePaid,
			Price:        "$999",
			PurchaseLink: "https://gumroad.com",
			Difficulty:   "Advanced",
			Audience:     "Non-Technical",
			ImageURL:     "https://picsum.photos/seed/web3strategy-course/800/450",
			Modules: []models.CourseModule{
				{Title: "Module 1: The Web3 Business Frontier", Description: "My framework for analyzing market trends and identifying high-value opportunities."},
				{Title: "Module 2: The Art of Tokenomics", Description: "Learn my methodology for designing token models that drive network effects and capture value."},
				{Title: "Module 3: Community-Led Go-to-Market", Description: "Master my system for building and mobilizing a passionate, resilient community."},
				{Title: "Module 4: Architecting Decentralized Governance", Description: "My approach to structuring your project for long-term success and resilience."},
				{Title: "Module 5: Navigating the Regulatory Maze", Description: "Understand my strategic approach to the key legal considerations in Web3."},
			},
		},
		{
			ID:           "course-paid-01",
			Title:        "Solidity for Architects",
			Subtitle:     "The Smart Contract Bootcamp for High-Impact Builders",
			Description:  "A project-based bootcamp where I teach you my approach to secure, efficient, and scalable smart contract development, from EVM fundamentals to advanced security patterns.",
			Type:         models.CoursePaid,
			Price:        "$699",
			PurchaseLink: "https://gumroad.com",
			Difficulty:   "Intermediate",
			Audience:     "Technical",
			ImageURL:     "https://picsum.photos/seed/solidity-architect/800/450",
			Modules: []models.CourseModule{
				{Title: "Module 1: Thinking on-chain: EVM Fundamentals", Description: "A deep dive into the core concepts of the Ethereum Virtual Machine from a builder's perspective."},
				{Title: "Module 2: Solidity Mastery: From Basics to Patterns", Description: "Master the syntax, data types, and advanced design patterns I use in production."},
				{Title: "Module 3: Security-First Development", Description: "My framework for identifying and preventing critical vulnerabilities like reentrancy and oracle manipulation."},
				{Title: "Module 4: The Professional Dev Environment", Description: "Learn my preferred stack for testing and deploying robust contracts with Hardhat."},
				{Title: "Module 5: Architecting a Full-Stack dApp", Description: "Integrate your smart contracts with a modern frontend using my best practices."},
			},
		},
		{
			ID:          "course-free-01",
			Title:       "Blockchain Fundamentals",
			Subtitle:    "Your First Step to Web3 Strategic Thinking",
			Description: "This free course provides my foundational mental models for Web3. In just four lessons, you will gain a rock-solid understanding of what blockchain is and its strategic importance.",
			Type:        models.CourseFree,
			Difficulty:  "Beginner",
			Audience:    "Non-Technical",
			ImageURL:    "https://picsum.photos/seed/freecourse-blockchain/800/450",
			Modules: []models.CourseModule{
				{Title: "Lesson 1: What is a Blockchain?", Description: "Understand the core concept of a distributed, immutable ledger."},
				{Title: "Lesson 2: The Power of Decentralization", Description: "Learn the strategic difference between centralized, decentralized, and distributed systems."},
				{Title: "Lesson 3: The Anatomy of a Transaction", Description: "Follow the lifecycle of a transaction from creation to confirmation."},
				{Title: "Lesson 4: Introduction to Smart Contracts", Description: "Discover how self-executing code is automating trust and creating new markets."},
			},
			NextCourseID: "course-paid-02",
		},
		{
			ID:          "course-free-02",
			Title:       "NFTs & Digital Ownership",
			Subtitle:    "Understanding the New Asset Class",
			Description: "My introductory briefing on Non-Fungible Tokens: what NFTs are, their primary use cases, and my key frameworks for evaluating an NFT project.",
			Type:        models.CourseFree,
			Difficulty:  "Beginner",
			Audience:    "Non-Technical",
			ImageURL:    "https://picsum.photos/seed/freecourse-nft/800/450",
			Modules: []models.CourseModule{
				{Title: "Lesson 1: What \"Non-Fungible\" Really Means", Description: "Grasp the core concept of unique, verifiable digital assets."},
				{Title: "Lesson 2: The Minting Process Explained", Description: "Learn how a digital file becomes a secure asset on the blockchain."},
				{Title: "Lesson 3: Navigating the NFT Ecosystem", Description: "An overview of the key marketplaces, wallets, and tools I recommend."},
				{Title: "Lesson 4: The Future of NFTs", Description: "Explore my analysis of use cases beyond art, in gaming, ticketing, and identity."},
			},
			NextCourseID: "course-paid-02",
		},
		{
			ID:          "course-free-03",
			Title:       "DeFi & Open Finance",
			Subtitle:    "An Introduction to the New Financial System",
			Description: "In this course, I explain how DeFi is rebuilding the global financial system from the ground up: lending, DEXs, and yield generation in a clear, strategic way.",
			Type:        models.CourseFree,
			Difficulty:  "Beginner",
			Audience:    "Non-Technical",
			ImageURL:    "https://picsum.photos/seed/freecourse-defi/800/450",
			Modules: []models.CourseModule{
				{Title: "Lesson 1: The Vision of DeFi", Description: "Understand the core principles of an open, permissionless financial system."},
				{Title: "Lesson 2: Core Primitives: Lending & Borrowing", Description: "Learn how you can put your crypto to work or use it as collateral."},
				{Title: "Lesson 3: Decentralized Exchanges (DEXs)", Description: "Discover the mechanics of peer-to-peer token swaps and liquidity pools."},
				{Title: "Lesson 4: A Framework for DeFi Risk", Description: "Learn about smart contract risk, impermanent loss, and other key considerations."},
			},
			NextCourseID: "course-paid-01",
		},
	}
}

func seedServiceTiers() []models.ServiceTier {
	return []models.ServiceTier{
		{
			Name:        "Strategist",
			Price:       "$49/mo",
			Description: "For professionals committed to mastering the strategic landscape. Get ongoing access to my core intelligence, frameworks, and a community of peers.",
			Features: []string{
				"Weekly High-Signal Briefings",
				"Full Access to My Intelligence Core",
				"Exclusive Community Access",
				"My Curated Resource Library",
				"Early Access to New Research",
			},
			IsFeatured:   false,
			PurchaseLink: "https://gumroad.com",
		},
		{
			Name:        "Architect",
			Price:       "$99/mo",
			Description: "For the builders and founders on the front lines. Get the complete toolkit to build, launch, and scale with conviction.",
			Features: []string{
				"All Strategist benefits",
				"Access to All Mastery Tracks",
				"Downloadable Frameworks & Templates",
				"Monthly Live \"Ask Me Anything\" Session",
				"Priority Support",
			},
			IsFeatured:   true,
			PurchaseLink: "https://gumroad.com",
		},
		{
			Name:        "Visionary",
			Price:       "$249/mo",
			Description: "A strategic alliance for the architects of tomorrow. This is for leaders who require direct, priority access to me to shape markets.",
			Features: []string{
				"All Architect benefits",
				"One 30-min 1:1 Strategy Call/Month",
				"Personalized Feedback on Your Projects",
				"Direct Line for Urgent Questions",
				"Exclusive Partner Offers",
			},
			IsFeatured:   false,
			PurchaseLink: "https://gumroad.com",
		},
	}
}

func seedLinkedInPosts() []models.LinkedInPost {
	return []models.LinkedInPost{
		{
			ID:        1,
			Content:   "Many are chasing short-term yield in the latest DeFi protocols. The real, defensible alpha is not in yield, but in **governance**. The ability to steer a protocol's future is the most undervalued asset in Web3.",
			Timestamp: "2h ago",
			Likes:     128,
			Comments:  19,
			Shares:    24,
		},
		{
			ID:        2,
			Content:   "I've just published a new framework for evaluating Layer 2 scaling solutions. It's not just about TPS. My model focuses on three core pillars: security assumptions, developer experience, and economic sustainability. Thinking in frameworks like this is how you move from being a speculator to a strategist.",
			Timestamp: "1d ago",
			Likes:     256,
			Comments:  42,
			Shares:    51,
		},
		{
			ID:        3,
			Content:   "The next wave of high-impact DAOs will look less like companies and more like city-states. The most critical skill for DAO leaders won't be finance or marketing, but **statesmanship**. We're in the very early innings of architecting the institutions of the digital age.",
			Timestamp: "3d ago",
			Likes:     412,
			Comments:  68,
			Shares:    99,
		},
	}
}

func seedHomepage() *models.HomepageData {
	return &models.HomepageData{
		AboutMe: models.AboutMeData{
			Headline: "A Visionary at the Frontier of Web3",
			Bio1:     "I operate at the intersection of technology, strategy, and market dynamics. My career is dedicated to one mission: solving the most complex problems in the decentralized world.",
			Bio2:     "This Hub is my curated collection of insights, strategies, and tools, designed to forge the next generation of Web3 leaders. My approach balances deep technical understanding with actionable business strategy.",
			ImageURL: "https://picsum.photos/seed/mak-portrait-pro/400/600",
		},
		EbookPromo: models.PromoData{
			Headline:    "Get My Free Web3 Leader's Playbook",
			Description: "Stop consuming endless, disconnected content. My free E-book is your first step to strategic mastery, delivered in a concise, actionable format.",
			ImageURL:    "https://picsum.photos/seed/playbook-pro/800/600",
			CTA:         "Download Playbook & Unlock My Core",
		},
		CoursesPromo: models.PromoData{
			Headline:    "From Core Concepts to Strategic Mastery",
			Description: "The free content in my Intelligence Core builds your foundation. My Mastery Tracks are engineered to accelerate your expertise.",
			CTA:         "Explore My Mastery Tracks",
		},
		MembershipPromo: models.PromoData{
			Headline:    "Join My Inner Circle of Web3 Leaders",
			Description: "Knowledge is the baseline. A strategic network is the endgame. My premium memberships are your induction into an exclusive alliance of Web3 leaders.",
			CTA:         "Explore Inner Circle Tiers",
		},
		LinkedInFeed: models.PromoData{
			Headline:    "Live from the Frontier",
			Description: "My real-time analysis on market signals, emerging protocols, and strategic opportunities.",
			CTA:         "Follow My Analysis on LinkedIn",
		},
	}
}

func seedTerms() *models.TermsOfService {
	return &models.TermsOfService{
		Title:        "Terms of Service",
		LastUpdated:  "October 26, 2023",
		Introduction: "Welcome to the Web3 Strategy Hub. These terms and conditions outline the rules and regulations for the use of this website and its services. By accessing this website, we assume you accept these terms and conditions.",
		Sections: []models.TermsSection{
			{
				Title:   "1. Intellectual Property Rights",
				Content: "Other than the content you own, the site owner and/or his licensors own all the intellectual property rights and materials contained in this Website. You are granted a limited license only for purposes of viewing the material contained on this Website.",
			},
			{
				Title:   "2. Restrictions",
				Content: "You are specifically restricted from publishing any Website material in any other media; selling, sublicensing and/or otherwise commercializing any Website material; or using this Website in any way that is or may be damaging to this Website or contrary to applicable laws and regulations.",
			},
			{
				Title:   "3. Memberships and Paid Content",
				Content: "Access to certain areas of this Website is restricted. Memberships and courses are sold via a third-party platform and are subject to their own terms and conditions. All payments are final and non-refundable.",
			},
			{
				Title:   "4. No warranties",
				Content: "This Website is provided \"as is,\" with all faults, and no representations or warranties of any kind are expressed related to this Website or the materials contained on it.",
			},
			{
				Title:   "5. Limitation of liability",
				Content: "In no event shall the site owner be held liable for anything arising out of or in any way connected with your use of this Website, including any indirect, consequential or special liability.",
			},
		},
	}
}
