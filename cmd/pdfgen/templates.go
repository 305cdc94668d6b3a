package main

// letterTemplates maps output filename to the plain text rendered into it.
// The first line of each entry is the document title.
var letterTemplates = map[string]string{
	"repair-request-letter.pdf": `Repair Request Letter
[Date]

[Landlord Name]
[Landlord Address]

Dear [Landlord Name],

I am writing to formally request repairs at [Rental Address], which I rent under the lease agreement dated [Lease Date]. The following issues require attention:

[Describe each issue, where it is located, and when it started]

These conditions affect the habitability of the unit. Under our lease and applicable housing codes, these repairs are the landlord's responsibility. Please arrange for the repairs within a reasonable time, and contact me at [Phone/Email] to schedule access.

I have attached photos documenting the issues. Please keep this letter for your records; I am keeping a copy for mine.

Sincerely,
[Tenant Name]`,

	"deposit-return-demand.pdf": `Security Deposit Return Demand
[Date]

[Landlord Name]
[Landlord Address]

Dear [Landlord Name],

I vacated the unit at [Rental Address] on [Move-out Date] and returned all keys. As of today, [Number] days have passed and I have not received my security deposit of [Amount], nor an itemized statement of deductions.

State law requires the deposit to be returned or an itemized statement provided within [Statutory Deadline] days of move-out. I left the unit in good condition, as documented by my move-out photos and the walkthrough.

Please send the full deposit to [Forwarding Address] within [Number] days. If I do not receive it, I am prepared to pursue the remedies available to me, including small claims court, where statutory penalties may apply.

Sincerely,
[Tenant Name]`,

	"lease-termination-notice.pdf": `Notice of Lease Termination
[Date]

[Landlord Name]
[Landlord Address]

Dear [Landlord Name],

This letter serves as my [Number]-day notice that I will terminate my tenancy at [Rental Address], effective [Termination Date], in accordance with the notice requirements of my lease dated [Lease Date].

I will return all keys on or before the termination date and will leave the unit in clean condition, normal wear and tear excepted. Please contact me at [Phone/Email] to schedule a move-out walkthrough.

My forwarding address for the return of my security deposit is:
[Forwarding Address]

Sincerely,
[Tenant Name]`,

	"rent-increase-response.pdf": `Response to Rent Increase Notice
[Date]

[Landlord Name]
[Landlord Address]

Dear [Landlord Name],

I received your notice dated [Notice Date] proposing to raise the rent for [Rental Address] from [Current Rent] to [Proposed Rent], effective [Effective Date].

Before I respond to the proposed increase, please confirm the following: that the notice period satisfies the [Number]-day minimum required by state law; and that the increase complies with any applicable local rent regulations.

I value my tenancy and would like to discuss the proposed amount. I am available at [Phone/Email] to talk about terms that could work for both of us, including a longer lease term in exchange for a smaller increase.

Sincerely,
[Tenant Name]`,
}
